// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps a resty.Client configured for one upstream API.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that sends every request to baseURL with
// JSON accept headers and the given timeout. Each call returns an
// independent client.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}
