package version

// version is injected at build time via ldflags
var version = "development"

// SetupVersion returns the version of the setup helper binary
func SetupVersion() string {
	return version
}
