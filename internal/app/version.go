package app

// Service metadata
const ServiceName = "alumni-portal"

// Build-time injection variables
// These are set via -ldflags during build:
//
//	go build -ldflags="-X 'github.com/Ramanuz4/Centralized-Alumni-Management-System/internal/app.Version=1.0.0'"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)
