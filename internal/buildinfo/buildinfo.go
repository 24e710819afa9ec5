package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/migmedia/planturl/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("planturl %s (commit=%s, date=%s)", Version, Commit, Date)
}

func UserAgent() string {
	return "planturl/" + Version
}
