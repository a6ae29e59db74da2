// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-forum/internal/logger"

// Storages groups the repositories built over one shared [*DB].
type Storages struct {
	AccountRepository    AccountRepository
	DiscussionRepository DiscussionRepository
	PostRepository       PostRepository
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AccountRepository:    NewAccountRepository(db, log),
		DiscussionRepository: NewDiscussionRepository(db, log),
		PostRepository:       NewPostRepository(db, log),
	}
}
