// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/utils"
	"github.com/sforsanjnarao/prevAuth-sub000/models"
)

type httpMailboxAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

type domainResponse struct {
	Domain   string `json:"domain"`
	IsActive bool   `json:"isActive"`
}

type createAccountRequest struct {
	Address  string `json:"address"`
	Password string `json:"password"`
}

// NewHTTPMailboxAdapter returns a [MailboxAdapter] for the provider at
// cfg.MailboxAddress. The address is normalised to scheme://host[/path]
// without a trailing slash.
func NewHTTPMailboxAdapter(cfg config.Adapter, logger *logger.Logger) (MailboxAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.MailboxAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid mailbox provider address: %w", err)
	}

	return &httpMailboxAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Domains implements [MailboxAdapter]. It GETs /domains and keeps the active
// ones.
func (h *httpMailboxAdapter) Domains(ctx context.Context) ([]string, error) {
	var domains []domainResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&domains).
		Get("/domains")
	if err != nil {
		return nil, fmt.Errorf("%w: domains request: %w", ErrProviderUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	active := make([]string, 0, len(domains))
	for _, d := range domains {
		if d.IsActive && d.Domain != "" {
			active = append(active, d.Domain)
		}
	}
	if len(active) == 0 {
		return nil, ErrNoActiveDomains
	}

	return active, nil
}

// CreateMailbox implements [MailboxAdapter]. It POSTs the credentials to
// /accounts. The password is sent to the provider only; it is never logged.
func (h *httpMailboxAdapter) CreateMailbox(ctx context.Context, address, password string) (models.Mailbox, error) {
	var mailbox models.Mailbox

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(createAccountRequest{Address: address, Password: password}).
		SetResult(&mailbox).
		Post("/accounts")
	if err != nil {
		return models.Mailbox{}, fmt.Errorf("%w: create account request: %w", ErrProviderUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "httpMailboxAdapter.CreateMailbox").
			Int("status", resp.StatusCode()).
			Msg("provider refused mailbox creation")
		return models.Mailbox{}, err
	}

	if mailbox.Address == "" {
		mailbox.Address = address
	}

	return mailbox, nil
}
