// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-house-builder/internal/adapter"
	"github.com/MKhiriev/go-house-builder/internal/preview"
)

// humanizePreviewError turns a model load failure into a short status line.
func humanizePreviewError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, preview.ErrInvalidAsset):
		return "model file is not a valid glTF binary"
	case errors.Is(err, adapter.ErrUnexpectedStatus):
		return "model not found on server"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "network unavailable or server unreachable"
	}

	return err.Error()
}
