// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mapping

import (
	"context"

	"github.com/taibuivan/skumaster/internal/core/skucode"
)

// # Mapping Data Access

// Repository defines the persistence contract for mapping tokens.
type Repository interface {

	/*
		List retrieves every token in creation order.

		Returns:
		  - []*Token: Collection of tokens
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Token, error)

	// FindByID fetches a single token. Returns ErrNotFound if missing.
	FindByID(context context.Context, id string) (*Token, error)

	// Create persists a new token and fills in its id and timestamps.
	Create(context context.Context, token *Token) error

	// Update replaces every editable field of a token.
	Update(context context.Context, token *Token) error

	// Delete removes a token and reports whether one existed.
	Delete(context context.Context, id string) (bool, error)

	// Count returns the number of tokens.
	Count(context context.Context) (int, error)
}

// DictionaryCache stores snapshots of the decoder dictionary keyed by a
// generation number. Every invalidation starts a new generation, so a snapshot
// built from a read that raced a write lands under a generation nobody reads.
type DictionaryCache interface {

	/*
		Get returns the snapshot of the current generation.

		Returns:
		  - []skucode.Entry: Cached entries in creation order
		  - int64: Current generation; a rebuilt snapshot must be stored under it
		  - bool: false on a cache miss
		  - error: Connectivity or decoding failures
	*/
	Get(context context.Context) ([]skucode.Entry, int64, bool, error)

	// Set stores the snapshot of a generation.
	Set(context context.Context, generation int64, entries []skucode.Entry) error

	// Invalidate starts a new generation.
	Invalidate(context context.Context) error
}
