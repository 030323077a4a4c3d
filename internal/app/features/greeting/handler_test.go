package greeting_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dalemusser/hellocountry/internal/app/features/greeting"
	"github.com/dalemusser/hellocountry/internal/app/system/countrycode"
	"github.com/dalemusser/hellocountry/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, resolver *countrycode.Resolver) *greeting.Handler {
	t.Helper()
	table := testutil.NewTable(t, testutil.SampleGreetings())
	return greeting.NewHandler(table, resolver, zap.NewNop())
}

func serve(h *greeting.Handler, target string) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	h.Serve(rec, testutil.NewRequest("GET", target))
	return rec
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t, testutil.UnsetCountry())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServe_KnownCode(t *testing.T) {
	rec := serve(newTestHandler(t, testutil.FixedCountry("fr")), "/")

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertJSON(t)

	body := rec.DecodeJSON(t)
	if body["code"] != "FR" {
		t.Errorf("code: got %q, want %q", body["code"], "FR")
	}
	if body["message"] != "Bonjour!" {
		t.Errorf("message: got %q, want %q", body["message"], "Bonjour!")
	}
	if len(body) != 2 {
		t.Errorf("unexpected fields in %v", body)
	}
}

func TestServe_UnknownCode(t *testing.T) {
	rec := serve(newTestHandler(t, testutil.FixedCountry("zz")), "/")

	rec.AssertStatus(t, http.StatusNotFound)
	rec.AssertJSON(t)

	body := rec.DecodeJSON(t)
	want := "Unknown country code 'ZZ'"
	if body["error"] != want {
		t.Errorf("error: got %q, want %q", body["error"], want)
	}
	if len(body) != 1 {
		t.Errorf("unexpected fields in %v", body)
	}
}

func TestServe_DefaultCode(t *testing.T) {
	tests := []struct {
		name     string
		resolver *countrycode.Resolver
	}{
		{"unset", testutil.UnsetCountry()},
		{"empty", testutil.FixedCountry("")},
		{"whitespace", testutil.FixedCountry("   ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newTestHandler(t, tt.resolver), "/")

			rec.AssertStatus(t, http.StatusOK)
			body := rec.DecodeJSON(t)
			if body["code"] != "EN" || body["message"] != "Hello!" {
				t.Errorf("got %v, want code EN / message Hello!", body)
			}
		})
	}
}

func TestServe_EveryTableCode(t *testing.T) {
	entries := map[string]string{
		"EN": "Hello!",
		"FR": "Bonjour!",
		"DE": "Hallo!",
		"JP": "こんにちは!",
		"GR": "Γεια σου!",
	}
	table := testutil.NewTable(t, entries)

	for _, code := range table.Codes() {
		t.Run(code, func(t *testing.T) {
			h := greeting.NewHandler(table, testutil.FixedCountry(code), zap.NewNop())
			rec := serve(h, "/")

			rec.AssertStatus(t, http.StatusOK)
			body := rec.DecodeJSON(t)
			if body["code"] != code {
				t.Errorf("code: got %q, want %q", body["code"], code)
			}
			if body["message"] != entries[code] {
				t.Errorf("message: got %q, want %q", body["message"], entries[code])
			}
		})
	}
}

func TestServe_EveryAbsentCode(t *testing.T) {
	for _, raw := range []string{"zz", "XX", " it ", "en-us", "A&B"} {
		t.Run(raw, func(t *testing.T) {
			rec := serve(newTestHandler(t, testutil.FixedCountry(raw)), "/")

			rec.AssertStatus(t, http.StatusNotFound)
			want := "Unknown country code '" + countrycode.Normalize(raw) + "'"
			if got := rec.DecodeJSON(t)["error"]; got != want {
				t.Errorf("error: got %q, want %q", got, want)
			}
		})
	}
}

func TestServe_IgnoresRequestInput(t *testing.T) {
	h := newTestHandler(t, testutil.FixedCountry("fr"))

	for _, target := range []string{"/?country=de", "/?code=EN", "/?COUNTRY_CODE=zz"} {
		rec := serve(h, target)
		rec.AssertStatus(t, http.StatusOK)
		if got := rec.DecodeJSON(t)["code"]; got != "FR" {
			t.Errorf("%s: code = %q, want FR", target, got)
		}
	}
}

func TestServe_Concurrent(t *testing.T) {
	h := newTestHandler(t, testutil.FixedCountry("fr"))

	var wg sync.WaitGroup
	errs := make(chan string, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			h.Serve(rec, httptest.NewRequest("GET", "/", nil))
			if rec.Code != http.StatusOK {
				errs <- rec.Body.String()
			}
		}()
	}
	wg.Wait()
	close(errs)

	for body := range errs {
		t.Errorf("unexpected non-200 response: %s", body)
	}
}

func TestRoutes(t *testing.T) {
	router := greeting.Routes(newTestHandler(t, testutil.FixedCountry("fr")))
	if router == nil {
		t.Fatal("Routes() returned nil")
	}

	t.Run("GET", func(t *testing.T) {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest("GET", "/"))
		rec.AssertStatus(t, http.StatusOK)
		rec.AssertContains(t, `"message":"Bonjour!"`)
	})

	t.Run("HEAD", func(t *testing.T) {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest("HEAD", "/"))
		rec.AssertStatus(t, http.StatusOK)
	})

	t.Run("POST not allowed", func(t *testing.T) {
		rec := testutil.NewRecorder()
		router.ServeHTTP(rec, testutil.NewRequest("POST", "/"))
		rec.AssertStatus(t, http.StatusMethodNotAllowed)
	})
}
