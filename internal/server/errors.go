// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means the handlers or the listen address are missing.
var errNoServersAreCreated = errors.New("no servers are created")
