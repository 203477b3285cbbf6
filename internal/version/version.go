// Package version exposes build metadata injected through -ldflags.
package version

//nolint:gochecknoglobals // Values are overwritten by the linker at build time.
var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// Short returns the bare version string.
func Short() string {
	return Version
}

// Full returns the version with commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
