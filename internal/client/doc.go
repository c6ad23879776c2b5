// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive house-builder page runtime.
//
// It wires the terminal UI, the session machine and its page controllers,
// the preview loader, and the local session storage into a single process
// lifecycle.
package client
