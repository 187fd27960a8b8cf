// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/ctxutil"
	"github.com/taibuivan/skumaster/internal/platform/validate"
	"github.com/taibuivan/skumaster/pkg/normalize"
)

// # Service Layer

// Service orchestrates business rules for the vocabularies.
//
// It validates and normalizes editor input, delegates numeric code allocation
// to the [Repository], and reports products left pointing at deleted rows.
type Service struct {
	repo       Repository
	references ReferenceCounter
	logger     *slog.Logger
}

// NewService constructs a new vocabulary [Service].
// references may be nil, in which case deletes skip the dangling reference check.
func NewService(repo Repository, references ReferenceCounter, logger *slog.Logger) *Service {
	return &Service{repo: repo, references: references, logger: logger}
}

// # Read Methods

/*
List returns every row of a vocabulary ordered by numeric code.

Parameters:
  - context: context.Context
  - kind: Kind

Returns:
  - []*Attribute: Rows of the vocabulary
  - error: Unknown kind or retrieval failures
*/
func (service *Service) List(context context.Context, kind Kind) ([]*Attribute, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	return service.repo.List(context, kind)
}

/*
Get retrieves a single row by id.

Returns:
  - *Attribute: Hydrated row
  - error: apperr.NotFound naming the vocabulary, or storage errors
*/
func (service *Service) Get(context context.Context, kind Kind, id string) (*Attribute, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	attribute, err := service.repo.FindByID(context, kind, id)
	if err != nil {
		return nil, relabelNotFound(err, kind)
	}
	return attribute, nil
}

// GetByCode retrieves a single row by its human code. The code is normalized first.
func (service *Service) GetByCode(context context.Context, kind Kind, code string) (*Attribute, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	attribute, err := service.repo.FindByCode(context, kind, normalize.Code(code))
	if err != nil {
		return nil, relabelNotFound(err, kind)
	}
	return attribute, nil
}

// Counts returns the number of rows per vocabulary.
func (service *Service) Counts(context context.Context) (map[Kind]int, error) {
	counts := make(map[Kind]int, len(Kinds))
	for _, kind := range Kinds {
		total, err := service.repo.Count(context, kind)
		if err != nil {
			return nil, err
		}
		counts[kind] = total
	}
	return counts, nil
}

// # Write Methods

/*
Create validates the input and persists a new row with a freshly allocated numeric code.

Parameters:
  - context: context.Context
  - kind: Kind
  - input: Input

Returns:
  - *Attribute: The stored row, including its numeric code
  - error: Validation, capacity, duplicate code or storage errors
*/
func (service *Service) Create(context context.Context, kind Kind, input Input) (*Attribute, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	input = sanitize(kind, input)
	if err := validateInput(kind, input); err != nil {
		return nil, err
	}

	attribute := &Attribute{
		Kind:       kind,
		Code:       input.Code,
		NameAr:     input.NameAr,
		NameEn:     input.NameEn,
		HexValue:   input.HexValue,
		CategoryID: input.CategoryID,
	}

	if err := service.repo.Create(context, attribute); err != nil {
		if apperr.HasCode(err, apperr.CodeCapacityExceeded) {
			ctxutil.GetLogger(context, service.logger).WarnContext(context, "numeric_code_capacity_reached",
				slog.String("kind", kind.String()),
			)
		}
		return nil, relabelConflict(err, kind, input.Code)
	}

	ctxutil.GetLogger(context, service.logger).InfoContext(context, "attribute_created",
		slog.String("kind", kind.String()),
		slog.String("id", attribute.ID),
		slog.String("code", attribute.Code),
		slog.Int("numeric_code", attribute.NumericCode),
	)

	return attribute, nil
}

/*
Update replaces code, names and kind-specific fields of an existing row.

Description: The numeric code is never modified, whatever the input says.

Returns:
  - *Attribute: The stored row with its original numeric code
  - error: apperr.NotFound, validation, duplicate code or storage errors
*/
func (service *Service) Update(context context.Context, kind Kind, id string, input Input) (*Attribute, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	input = sanitize(kind, input)
	if err := validateInput(kind, input); err != nil {
		return nil, err
	}

	attribute := &Attribute{
		ID:         id,
		Kind:       kind,
		Code:       input.Code,
		NameAr:     input.NameAr,
		NameEn:     input.NameEn,
		HexValue:   input.HexValue,
		CategoryID: input.CategoryID,
	}

	if err := service.repo.Update(context, attribute); err != nil {
		return nil, relabelConflict(relabelNotFound(err, kind), kind, input.Code)
	}

	return attribute, nil
}

/*
Delete removes a row. Its numeric code is retired, not recycled.

Description: Products referencing the row are left untouched; their SKUs keep the
old codes and the attribute reads back as absent. A warning is logged with the
number of such products.

Returns:
  - error: apperr.NotFound when no row was removed, or storage errors
*/
func (service *Service) Delete(context context.Context, kind Kind, id string) error {
	if err := checkKind(kind); err != nil {
		return err
	}

	logger := ctxutil.GetLogger(context, service.logger)

	if service.references != nil {
		referencing, err := service.references.CountReferences(context, kind, id)
		if err != nil {
			return err
		}
		if referencing > 0 {
			logger.WarnContext(context, "attribute_deleted_with_references",
				slog.String("kind", kind.String()),
				slog.String("id", id),
				slog.Int("products", referencing),
			)
		}
	}

	removed, err := service.repo.Delete(context, kind, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound(kind.Resource())
	}

	logger.InfoContext(context, "attribute_deleted", slog.String("kind", kind.String()), slog.String("id", id))
	return nil
}

// # Helpers

// sanitize normalizes input and drops fields that do not apply to kind.
func sanitize(kind Kind, input Input) Input {
	input.Code = normalize.Code(input.Code)
	input.NameAr = normalize.Text(input.NameAr)
	input.NameEn = normalize.OptionalText(input.NameEn)
	input.HexValue = normalize.OptionalText(input.HexValue)
	input.CategoryID = normalize.OptionalText(input.CategoryID)

	if kind != KindColor {
		input.HexValue = nil
	} else if input.HexValue != nil {
		upper := strings.ToUpper(*input.HexValue)
		input.HexValue = &upper
	}

	if kind != KindType {
		input.CategoryID = nil
	}

	return input
}

// validateInput enforces the field rules shared by create and update.
func validateInput(kind Kind, input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldCode, input.Code).
		MaxLen(FieldCode, input.Code, MaxCodeLength).
		Code(FieldCode, input.Code)

	validator.Required(FieldNameAr, input.NameAr).MaxLen(FieldNameAr, input.NameAr, MaxNameLength)

	if input.NameEn != nil {
		validator.MaxLen(FieldNameEn, *input.NameEn, MaxNameLength)
	}
	if kind == KindColor && input.HexValue != nil {
		validator.HexColor(FieldHexValue, *input.HexValue)
	}
	if kind == KindType && input.CategoryID != nil {
		validator.UUID(FieldCategoryID, *input.CategoryID)
	}

	return validator.Err()
}

func checkKind(kind Kind) error {
	if !kind.Valid() {
		return apperr.NotFound("Vocabulary")
	}
	return nil
}

func relabelNotFound(err error, kind Kind) error {
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return apperr.NotFound(kind.Resource())
	}
	return err
}

func relabelConflict(err error, kind Kind, code string) error {
	if apperr.HasCode(err, apperr.CodeConflict) {
		conflict := apperr.Conflict(fmt.Sprintf("%s code %q already exists", kind.Resource(), code))
		conflict.Cause = err
		return conflict
	}
	return err
}
