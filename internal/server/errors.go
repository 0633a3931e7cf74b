// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoHTTPServer is returned by NewServer when there is no HTTP handler or
// listen address to serve.
var errNoHTTPServer = errors.New("no http server configured")
