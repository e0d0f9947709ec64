// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// AppBuildInfo is the version metadata linked into a binary with -ldflags.
// Any field may be empty for local builds.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

// String renders the banner printed at startup, with N/A for unset fields.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s",
		orNotAvailable(a.buildVersion), orNotAvailable(a.buildDate), orNotAvailable(a.buildCommit))
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
