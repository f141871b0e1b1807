// Package version reports build metadata for the generator binary.
package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Set at build time:
//
//	go build -ldflags "-X github.com/mcountryman/auth0-management-codegen/version.Version=v0.3.0 \
//	  -X github.com/mcountryman/auth0-management-codegen/version.CommitHash=$(git rev-parse HEAD)"
var (
	CommitHash = "dev"
	BuildTime  = "unknown"
	Version    = "dev"
)

// Info is the build metadata printed by `auth0-codegen version`
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// IsRelease reports whether Version is a semantic version rather than a
// development placeholder.
func (i Info) IsRelease() bool {
	_, err := semver.NewVersion(i.Version)
	return err == nil
}

func (i Info) String() string {
	if !i.IsRelease() {
		return fmt.Sprintf("auth0-codegen development build (commit %s, built %s)", i.Short(), i.BuildTime)
	}
	return fmt.Sprintf("auth0-codegen %s (commit %s, built %s)", i.Version, i.Short(), i.BuildTime)
}

// UserAgent identifies the generator to the description server
func (i Info) UserAgent() string {
	if !i.IsRelease() {
		return "auth0-codegen/dev+" + i.Short()
	}
	return "auth0-codegen/" + i.Version
}

// Short returns the commit hash cut to seven characters
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}
