// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/sforsanjnarao/prevAuth-sub000/internal/logger"

// Repositories groups every repository built on one [DB].
type Repositories struct {
	UserRepository     UserRepository
	VaultRepository    VaultRepository
	IdentityRepository IdentityRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db, log),
		VaultRepository:    NewVaultRepository(db, log),
		IdentityRepository: NewIdentityRepository(db, log),
	}
}
