// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs next to the HTTP server.
//
// Every [Worker] blocks in Run until its context is cancelled. [Workers]
// starts them all in their own goroutines and waits for them to stop.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
type Worker interface {
	Run(ctx context.Context)
}
