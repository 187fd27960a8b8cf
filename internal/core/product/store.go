// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"

	"github.com/taibuivan/skumaster/internal/core/vocabulary"
)

// # Product Data Access

// Repository defines the persistence contract for products.
type Repository interface {

	/*
		List returns a filtered page of products, newest first.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit: int
		  - offset: int

		Returns:
		  - []*Product: The requested page
		  - int: Total number of matching products
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Product, int, error)

	// All returns every product, newest first.
	All(context context.Context) ([]*Product, error)

	// FindByID fetches a single product. Returns ErrNotFound if missing.
	FindByID(context context.Context, id string) (*Product, error)

	// Create persists a new product including its derived codes.
	Create(context context.Context, product *Product) error

	// Update replaces every stored field of a product.
	Update(context context.Context, product *Product) error

	// Delete removes a product and reports whether one existed.
	Delete(context context.Context, id string) (bool, error)

	// Count returns the number of products.
	Count(context context.Context) (int, error)

	// CountReferences returns how many products reference a vocabulary row.
	CountReferences(context context.Context, kind vocabulary.Kind, id string) (int, error)
}

// Attributes resolves vocabulary rows. It is satisfied by [vocabulary.Service].
type Attributes interface {
	Get(context context.Context, kind vocabulary.Kind, id string) (*vocabulary.Attribute, error)
	List(context context.Context, kind vocabulary.Kind) ([]*vocabulary.Attribute, error)
}
