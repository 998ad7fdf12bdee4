package app

import (
	"fmt"
	"strings"
)

// Version, Commit, and BuildTime are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/farmdash/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns a formatted version string for startup logs, the
// version command and the health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// UserAgent appends the version to the configured product name unless it
// already carries one, e.g. "farmdash" becomes "farmdash/1.2.0".
func UserAgent(product string) string {
	product = strings.TrimSpace(product)
	if product == "" {
		product = "farmdash"
	}
	if strings.Contains(product, "/") {
		return product
	}
	return product + "/" + Version
}
