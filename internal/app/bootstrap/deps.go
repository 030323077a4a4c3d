// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/dalemusser/hellocountry/internal/app/store/greetings"
	"github.com/dalemusser/hellocountry/internal/app/system/countrycode"
)

// Deps holds the process-wide dependencies built during Startup.
type Deps struct {
	Greetings *greetings.Table
	Resolver  *countrycode.Resolver
}
