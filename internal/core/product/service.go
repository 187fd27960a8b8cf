// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/skumaster/internal/core/skucode"
	"github.com/taibuivan/skumaster/internal/core/vocabulary"
	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/ctxutil"
	"github.com/taibuivan/skumaster/internal/platform/validate"
	"github.com/taibuivan/skumaster/pkg/normalize"
)

const resourceName = "Product"

// # Service Layer

// Service orchestrates product writes and the derivation of their codes.
type Service struct {
	repo       Repository
	attributes Attributes
	logger     *slog.Logger
}

// NewService constructs a new product [Service].
func NewService(repo Repository, attributes Attributes, logger *slog.Logger) *Service {
	return &Service{repo: repo, attributes: attributes, logger: logger}
}

// # Read Methods

/*
List returns a page of products with their attributes resolved.

Parameters:
  - context: context.Context
  - filter: Filter
  - limit: int
  - offset: int

Returns:
  - []*Details: The requested page
  - int: Total number of matching products
  - error: Retrieval failures
*/
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Details, int, error) {
	products, total, err := service.repo.List(context, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	details, err := service.hydrate(context, products)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}

// Recent returns the newest products.
func (service *Service) Recent(context context.Context, limit int) ([]*Details, error) {
	details, _, err := service.List(context, Filter{}, limit, 0)
	return details, err
}

// Count returns the number of products.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

/*
Get retrieves a single product with its attributes resolved.

Description: References to deleted vocabulary rows are left nil.

Returns:
  - *Details: Product and attributes
  - error: apperr.NotFound or retrieval failures
*/
func (service *Service) Get(context context.Context, id string) (*Details, error) {
	product, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, relabelNotFound(err)
	}

	resolved, err := service.resolve(context, product.ReferenceIDs())
	if err != nil {
		return nil, err
	}
	return detailsOf(product, resolved), nil
}

// # Write Methods

/*
Create validates the input, resolves the eleven attributes and stores the product
with its derived codes.

Parameters:
  - context: context.Context
  - input: Input

Returns:
  - *Details: The stored product and its attributes
  - error: Validation, apperr.ReferentialIntegrity or storage errors
*/
func (service *Service) Create(context context.Context, input Input) (*Details, error) {
	product := sanitize(input).product("")
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	resolved, err := service.derive(context, product)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, product); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context, service.logger).InfoContext(context, "product_created",
		slog.String("id", product.ID),
		slog.String("sku_code", product.SKUCode),
	)

	return detailsOf(product, resolved), nil
}

/*
Update replaces a product and re-derives its codes from the current attribute codes.

Returns:
  - *Details: The stored product and its attributes
  - error: apperr.NotFound, validation, apperr.ReferentialIntegrity or storage errors
*/
func (service *Service) Update(context context.Context, id string, input Input) (*Details, error) {
	product := sanitize(input).product(id)
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if _, err := service.repo.FindByID(context, id); err != nil {
		return nil, relabelNotFound(err)
	}

	resolved, err := service.derive(context, product)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, product); err != nil {
		return nil, relabelNotFound(err)
	}

	ctxutil.GetLogger(context, service.logger).InfoContext(context, "product_updated",
		slog.String("id", product.ID),
		slog.String("sku_code", product.SKUCode),
	)

	return detailsOf(product, resolved), nil
}

// Delete removes a product. Vocabulary rows are untouched.
func (service *Service) Delete(context context.Context, id string) error {
	removed, err := service.repo.Delete(context, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound(resourceName)
	}

	ctxutil.GetLogger(context, service.logger).InfoContext(context, "product_deleted", slog.String("id", id))
	return nil
}

// # Derivation

// derive resolves every reference of product and stores the encoded identifiers on it.
func (service *Service) derive(context context.Context, product *Product) (map[vocabulary.Kind]*vocabulary.Attribute, error) {
	resolved, err := service.resolve(context, product.ReferenceIDs())
	if err != nil {
		return nil, err
	}

	var missing []apperr.FieldError
	for _, kind := range vocabulary.Kinds {
		if resolved[kind] == nil {
			missing = append(missing, apperr.FieldError{
				Field:   ReferenceField(kind),
				Message: kind.Resource() + " not found",
			})
		}
	}
	if len(missing) > 0 {
		return nil, apperr.ReferentialIntegrity("Related master data not found", missing...)
	}

	codes, err := skucode.Encode(vocabulary.CodeSet(resolved, product.DesignNo))
	if err != nil {
		return nil, err
	}
	product.applyCodes(codes)

	return resolved, nil
}

/*
resolve looks up each referenced row concurrently.

Description: A reference that does not exist is simply absent from the result.
Any other lookup failure cancels the remaining lookups and is returned.

Parameters:
  - context: context.Context
  - ids: map[vocabulary.Kind]string

Returns:
  - map[vocabulary.Kind]*vocabulary.Attribute: Rows that were found
  - error: The first non NotFound lookup failure
*/
func (service *Service) resolve(context context.Context, ids map[vocabulary.Kind]string) (map[vocabulary.Kind]*vocabulary.Attribute, error) {
	var mu sync.Mutex
	resolved := make(map[vocabulary.Kind]*vocabulary.Attribute, len(ids))

	group, groupContext := errgroup.WithContext(context)
	for kind, id := range ids {
		group.Go(func() error {
			attribute, err := service.attributes.Get(groupContext, kind, id)
			if err != nil {
				if apperr.HasCode(err, apperr.CodeNotFound) {
					return nil
				}
				return err
			}

			mu.Lock()
			resolved[kind] = attribute
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	return resolved, nil
}

// hydrate attaches attributes to many products using one listing per vocabulary.
func (service *Service) hydrate(context context.Context, products []*Product) ([]*Details, error) {
	details := make([]*Details, len(products))
	if len(products) == 0 {
		return details, nil
	}

	var mu sync.Mutex
	catalog := make(map[vocabulary.Kind]map[string]*vocabulary.Attribute, len(vocabulary.Kinds))

	group, groupContext := errgroup.WithContext(context)
	for _, kind := range vocabulary.Kinds {
		group.Go(func() error {
			rows, err := service.attributes.List(groupContext, kind)
			if err != nil {
				return err
			}

			byID := make(map[string]*vocabulary.Attribute, len(rows))
			for _, row := range rows {
				byID[row.ID] = row
			}

			mu.Lock()
			catalog[kind] = byID
			mu.Unlock()
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for i, product := range products {
		resolved := make(map[vocabulary.Kind]*vocabulary.Attribute, len(vocabulary.Kinds))
		for kind, id := range product.ReferenceIDs() {
			if attribute, ok := catalog[kind][id]; ok {
				resolved[kind] = attribute
			}
		}
		details[i] = detailsOf(product, resolved)
	}

	return details, nil
}

func detailsOf(product *Product, resolved map[vocabulary.Kind]*vocabulary.Attribute) *Details {
	details := &Details{Product: product}
	for kind, attribute := range resolved {
		details.attach(kind, attribute)
	}
	return details
}

// # Helpers

func sanitize(input Input) Input {
	input.SeasonID = strings.TrimSpace(input.SeasonID)
	input.CategoryID = strings.TrimSpace(input.CategoryID)
	input.TypeID = strings.TrimSpace(input.TypeID)
	input.FabricID = strings.TrimSpace(input.FabricID)
	input.ColorID = strings.TrimSpace(input.ColorID)
	input.StyleID = strings.TrimSpace(input.StyleID)
	input.PrintTypeID = strings.TrimSpace(input.PrintTypeID)
	input.PlacementID = strings.TrimSpace(input.PlacementID)
	input.SupplierID = strings.TrimSpace(input.SupplierID)
	input.FactoryID = strings.TrimSpace(input.FactoryID)
	input.SizeID = strings.TrimSpace(input.SizeID)

	input.DesignNo = normalize.Text(input.DesignNo)
	input.ProductNameAr = normalize.Text(input.ProductNameAr)
	input.ProductNameEn = normalize.OptionalText(input.ProductNameEn)
	input.Notes = normalize.OptionalText(input.Notes)
	return input
}

// ValidateDesignNo adds the design number rules to validator under field.
// A hyphen would split the number across two SKU components.
func ValidateDesignNo(validator *validate.Validator, field, designNo string) *validate.Validator {
	return validator.Required(field, designNo).
		MaxLen(field, designNo, MaxDesignNoLength).
		Custom(field, strings.Contains(designNo, skucode.Separator), "Must not contain hyphens")
}

// validateProduct enforces the field rules shared by create and update.
func validateProduct(product *Product) error {
	validator := &validate.Validator{}

	for _, kind := range vocabulary.Kinds {
		field, id := ReferenceField(kind), product.ReferenceID(kind)
		if validator.Required(field, id); id != "" {
			validator.UUID(field, id)
		}
	}

	ValidateDesignNo(validator, FieldDesignNo, product.DesignNo)

	validator.Required(FieldProductNameAr, product.ProductNameAr).
		MaxLen(FieldProductNameAr, product.ProductNameAr, MaxNameLength)

	if product.ProductNameEn != nil {
		validator.MaxLen(FieldProductNameEn, *product.ProductNameEn, MaxNameLength)
	}
	if product.Notes != nil {
		validator.MaxLen(FieldNotes, *product.Notes, MaxNotesLength)
	}

	return validator.Err()
}

func relabelNotFound(err error) error {
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return apperr.NotFound(resourceName)
	}
	return err
}
