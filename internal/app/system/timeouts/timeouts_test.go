package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if ReadHeader() != DefaultReadHeader || Read() != DefaultRead || Write() != DefaultWrite ||
		Idle() != DefaultIdle || Shutdown() != DefaultShutdown {
		t.Error("Reset() did not restore defaults")
	}
}

func TestConfigure_IgnoresZero(t *testing.T) {
	t.Cleanup(Reset)
	Reset()

	Configure(Config{Shutdown: 3 * time.Second})

	if Shutdown() != 3*time.Second {
		t.Errorf("Shutdown() = %v, want 3s", Shutdown())
	}
	if Read() != DefaultRead {
		t.Errorf("Read() = %v, want default %v", Read(), DefaultRead)
	}
}

func TestConfigure_All(t *testing.T) {
	t.Cleanup(Reset)

	Configure(Config{
		ReadHeader: time.Second,
		Read:       2 * time.Second,
		Write:      3 * time.Second,
		Idle:       4 * time.Second,
		Shutdown:   5 * time.Second,
	})

	got := []time.Duration{ReadHeader(), Read(), Write(), Idle(), Shutdown()}
	for i, d := range got {
		if want := time.Duration(i+1) * time.Second; d != want {
			t.Errorf("timeout %d = %v, want %v", i, d, want)
		}
	}
}
