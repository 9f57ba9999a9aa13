package version

// Version can be overridden at build time with -ldflags "-X hydropathy/internal/version.Version=...".
var Version = "0.3.0"
