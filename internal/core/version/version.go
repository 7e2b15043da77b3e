// Package version reports build metadata stamped at link time.
package version

// Overridden with -ldflags, for example
// -X 'joblens/internal/core/version.version=v0.1.0'
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// BuildInfo identifies one build of the service.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamped build metadata.
func Info() BuildInfo {
	return BuildInfo{
		Service: "joblens-api",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}
