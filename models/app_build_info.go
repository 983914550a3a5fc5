package models

// AppBuildInfo carries the ldflags-injected build metadata shown on the
// client's build-info screen.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}
