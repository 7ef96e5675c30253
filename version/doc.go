// Package version provides build version information for pollkit binaries.
//
// Version, git commit, branch and build time are set at compile time
// via -ldflags; anything left unset is read from the embedded build info:
//
//	go build -ldflags "-X github.com/kbukum/pollkit/version.Version=1.0.0" ./cmd/upperwords
package version
