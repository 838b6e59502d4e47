package version

// Version is the version of phase-report.
var Version = "0.1.0"
