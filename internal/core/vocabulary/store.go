// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package vocabulary

import "context"

// # Vocabulary Data Access

// Repository defines the data access contract for the eleven vocabularies.
type Repository interface {

	/*
		List retrieves every row of a vocabulary ordered by numeric code.

		Parameters:
		  - context: context.Context
		  - kind: Kind

		Returns:
		  - []*Attribute: Collection of rows
		  - error: Database retrieval failures
	*/
	List(context context.Context, kind Kind) ([]*Attribute, error)

	/*
		FindByID fetches a single row by primary key.

		Returns:
		  - *Attribute: The hydrated row
		  - error: ErrNotFound if missing
	*/
	FindByID(context context.Context, kind Kind, id string) (*Attribute, error)

	// FindByCode fetches a single row by its unique human code.
	FindByCode(context context.Context, kind Kind, code string) (*Attribute, error)

	/*
		Create allocates the next numeric code and persists the row atomically.

		Description: The allocation and the insert share one transaction. When the
		vocabulary is full nothing is written.

		Parameters:
		  - context: context.Context
		  - attribute: *Attribute (NumericCode, CreatedAt and UpdatedAt are filled in)

		Returns:
		  - error: apperr.CapacityExceeded, a conflict on duplicate code, or storage errors
	*/
	Create(context context.Context, attribute *Attribute) error

	// Update replaces the editable fields of a row. The numeric code is preserved.
	Update(context context.Context, attribute *Attribute) error

	// Delete removes a row and reports whether one existed.
	Delete(context context.Context, kind Kind, id string) (bool, error)

	// Count returns the number of rows in a vocabulary.
	Count(context context.Context, kind Kind) (int, error)
}

// ReferenceCounter reports how many products still point at a vocabulary row.
type ReferenceCounter interface {
	CountReferences(context context.Context, kind Kind, id string) (int, error)
}
