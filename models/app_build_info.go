// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const buildInfoUnset = "N/A"

// AppBuildInfo carries the build metadata injected by linker flags.
type AppBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewAppBuildInfo constructs [AppBuildInfo]. Empty values become "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	orUnset := func(s string) string {
		if s == "" {
			return buildInfoUnset
		}
		return s
	}
	return AppBuildInfo{
		Version: orUnset(buildVersion),
		Date:    orUnset(buildDate),
		Commit:  orUnset(buildCommit),
	}
}

// HasVersion reports whether a version was injected at build time.
func (a AppBuildInfo) HasVersion() bool {
	return a.Version != "" && a.Version != buildInfoUnset
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}
