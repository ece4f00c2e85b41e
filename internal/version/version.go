package version

var (
	Version   string = "dev"
	GitCommit string = ""
	BuildTime string = "unknown"
)

func GetVersion() string {
	return Version
}

// GetGitCommit returns the build commit sha, or "" when built without one.
func GetGitCommit() string {
	return GitCommit
}

func GetFullVersion() string {
	commit := GitCommit
	if commit == "" {
		commit = "unknown"
	}
	return Version + " (commit: " + commit + ", built: " + BuildTime + ")"
}
