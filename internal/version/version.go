// internal/version/version.go
package version

// Version is the CLI version; override at build time with
// -ldflags "-X utec/internal/version.Version=...".
var Version = "0.1.0-dev"
