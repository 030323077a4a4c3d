// Package data holds the resources compiled into the hellocountry binary.
package data

import "embed"

// GreetingsFile is the name of the bundled greetings table inside FS.
const GreetingsFile = "greetings.json"

//go:embed greetings.json
var FS embed.FS
