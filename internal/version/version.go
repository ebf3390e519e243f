// Package version exposes the application version string.
package version

// Version is the current application version. Overridden at build time via
// -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "1.0.0"
