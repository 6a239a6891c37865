// Package version reports the pagelist build version.
package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is the build version, set with
// -ldflags "-X github.com/rshade/pagelist/pkg/version.Version=v1.2.3".
//
//nolint:gochecknoglobals // Set by the linker at build time.
var Version = "0.0.0-dev"

// GetVersion returns the build version string.
func GetVersion() string {
	return Version
}

// Semver parses the build version.
func Semver() (*semver.Version, error) {
	v, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid build version %q: %w", Version, err)
	}
	return v, nil
}

// Display returns the build version in canonical semver form ("v1.2.3" becomes
// "1.2.3"). An unparseable version is returned unchanged.
func Display() string {
	v, err := Semver()
	if err != nil {
		return Version
	}
	return v.String()
}

// IsDevelopment reports whether the build is a prerelease or has an unparseable version.
func IsDevelopment() bool {
	v, err := Semver()
	if err != nil {
		return true
	}
	return v.Prerelease() != ""
}
