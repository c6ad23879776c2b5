// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package preview loads the 3D house model shown next to the auth forms.
//
// The preview is independent of the session: it loads whether or not a
// visitor is signed in, and a failed load never affects authentication.
package preview
