// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the server.
package handler

import (
	"github.com/sforsanjnarao/prevAuth-sub000/internal/config"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/handler/http"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/logger"
	"github.com/sforsanjnarao/prevAuth-sub000/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
