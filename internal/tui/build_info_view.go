// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-house-builder/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "House Builder"},
		{"Version", info.Version()},
		{"Date", info.Date()},
		{"Commit", info.Commit()},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		v := strings.TrimSpace(r[1])
		if v == "" {
			v = "N/A"
		}
		lines = append(lines, fmt.Sprintf("%-12s %s", r[0]+":", v))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc: back")
}
