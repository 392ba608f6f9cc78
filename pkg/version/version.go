package version

var (
	// These values are injected during build - DO NOT MODIFY
	Version   = "VERSION_PLACEHOLDER"
	CommitSHA = "COMMIT_PLACEHOLDER"
)

func GetVersionInfo() string {
	return "GestionPDF " + Version
}

func GetDetailedVersionInfo() string {
	return "GestionPDF\n" +
		"Version:  " + Version + "\n" +
		"Commit:   " + CommitSHA + "\n"
}

// UserAgent is sent with outbound requests such as the release check.
func UserAgent() string {
	return "GestionPDF/" + Version
}
