// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// notAvailable stands in for build metadata the linker did not inject.
const notAvailable = "N/A"

// AppBuildInfo is the build metadata injected by -ldflags. It is immutable.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{version: version, date: date, commit: commit}
}

// Version is empty when nothing was injected.
func (a AppBuildInfo) Version() string { return a.version }

func (a AppBuildInfo) Date() string { return a.date }

func (a AppBuildInfo) Commit() string { return a.commit }

// String renders "version (commit, date)", with N/A for missing parts.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (%s, %s)", orNotAvailable(a.version), orNotAvailable(a.commit), orNotAvailable(a.date))
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
