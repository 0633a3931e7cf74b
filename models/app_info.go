// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppInfo is the public description of the running server.
type AppInfo struct {
	Version string `json:"version"`
}
