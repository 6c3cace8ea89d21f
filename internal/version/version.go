// Package version holds the build version reported by tabulate --version.
package version

// Version is the build version, overridden via ldflags by release builds.
var Version = "v0.0.0-dev" //nolint:gochecknoglobals // Set by ldflags at build time.
