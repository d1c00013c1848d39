// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"io"
)

// notAvailable stands in for build metadata that was not injected by the
// linker.
const notAvailable = "N/A"

// AppBuildInfo carries the build metadata injected with -ldflags -X.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo replaces every empty value with "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNotAvailable(buildVersion),
		buildDate:    orNotAvailable(buildDate),
		buildCommit:  orNotAvailable(buildCommit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}

// HasVersion reports whether a version was injected at build time.
func (a AppBuildInfo) HasVersion() bool {
	return a.buildVersion != notAvailable
}

// Print writes the three build lines shown at startup.
func (a AppBuildInfo) Print(w io.Writer) {
	_, _ = fmt.Fprintf(w, "Build version: %s\n", a.buildVersion)
	_, _ = fmt.Fprintf(w, "Build date: %s\n", a.buildDate)
	_, _ = fmt.Fprintf(w, "Build commit: %s\n", a.buildCommit)
}
