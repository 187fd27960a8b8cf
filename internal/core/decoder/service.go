// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package decoder exposes the SKU codec over the live catalogue.

Decoding reads SKUs against the mapping token table. Previewing encodes a set
of attribute codes against the vocabularies without storing a product, which
lets editors check an SKU before they create it.
*/
package decoder

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/taibuivan/skumaster/internal/core/product"
	"github.com/taibuivan/skumaster/internal/core/skucode"
	"github.com/taibuivan/skumaster/internal/core/vocabulary"
	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/ctxutil"
	"github.com/taibuivan/skumaster/internal/platform/validate"
	"github.com/taibuivan/skumaster/pkg/normalize"
)

// DictionarySource provides the mapping dictionary. It is satisfied by the mapping service.
type DictionarySource interface {
	Dictionary(context context.Context) (*skucode.Dictionary, error)
}

// AttributeFinder resolves vocabulary rows by human code. It is satisfied by [vocabulary.Service].
type AttributeFinder interface {
	GetByCode(context context.Context, kind vocabulary.Kind, code string) (*vocabulary.Attribute, error)
}

// # Models

// DecodeRequest is the body of a decode call.
type DecodeRequest struct {
	SKU  string `json:"sku"`
	Mode string `json:"mode"`
}

// PreviewInput names one code per vocabulary plus the design number.
type PreviewInput struct {
	Season    string `json:"season"`
	Category  string `json:"category"`
	Type      string `json:"type"`
	DesignNo  string `json:"design_no"`
	Fabric    string `json:"fabric"`
	Color     string `json:"color"`
	Style     string `json:"style"`
	PrintType string `json:"print_type"`
	Placement string `json:"placement"`
	Supplier  string `json:"supplier"`
	Factory   string `json:"factory"`
	Size      string `json:"size"`
}

// codes returns the requested code for every vocabulary.
func (input PreviewInput) codes() map[vocabulary.Kind]string {
	return map[vocabulary.Kind]string{
		vocabulary.KindSeason:    input.Season,
		vocabulary.KindCategory:  input.Category,
		vocabulary.KindType:      input.Type,
		vocabulary.KindFabric:    input.Fabric,
		vocabulary.KindColor:     input.Color,
		vocabulary.KindStyle:     input.Style,
		vocabulary.KindPrintType: input.PrintType,
		vocabulary.KindPlacement: input.Placement,
		vocabulary.KindSupplier:  input.Supplier,
		vocabulary.KindFactory:   input.Factory,
		vocabulary.KindSize:      input.Size,
	}
}

// Preview is the outcome of encoding without persisting.
type Preview struct {
	skucode.Codes
	// Attributes holds the resolved rows in SKU order.
	Attributes []*vocabulary.Attribute `json:"attributes"`
}

const (
	FieldSKU      = "sku"
	FieldMode     = "mode"
	FieldDesignNo = "design_no"
)

// # Service Layer

// Service decodes and previews SKUs.
type Service struct {
	dictionary DictionarySource
	attributes AttributeFinder
	logger     *slog.Logger
}

// NewService constructs a new decoder [Service].
func NewService(dictionary DictionarySource, attributes AttributeFinder, logger *slog.Logger) *Service {
	return &Service{dictionary: dictionary, attributes: attributes, logger: logger}
}

/*
Decode resolves each component of a SKU against the mapping dictionary.

Parameters:
  - context: context.Context
  - request: DecodeRequest (mode may be empty for auto detection)

Returns:
  - *skucode.Result: Per-slot decoding
  - error: Validation, apperr.MalformedSKU or dictionary loading failures
*/
func (service *Service) Decode(context context.Context, request DecodeRequest) (*skucode.Result, error) {
	raw := strings.TrimSpace(request.SKU)

	mode, ok := skucode.ParseMode(request.Mode)
	validator := &validate.Validator{}
	validator.Required(FieldSKU, raw).
		Custom(FieldMode, !ok, "Must be one of: text, segmented, compact, auto")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	dictionary, err := service.dictionary.Dictionary(context)
	if err != nil {
		return nil, err
	}

	result, err := skucode.Decode(raw, mode, dictionary)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context, service.logger).DebugContext(context, "sku_decoded",
		slog.String("mode", string(result.Mode)),
		slog.Int("segments", len(result.Segments)),
		slog.Int("unresolved", result.Unresolved()),
	)

	return result, nil
}

/*
Preview encodes a set of attribute codes without storing anything.

Description: Every code is looked up concurrently. Codes that do not exist are
reported together as one apperr.ReferentialIntegrity error.

Parameters:
  - context: context.Context
  - input: PreviewInput

Returns:
  - *Preview: Derived identifiers and resolved rows
  - error: Validation, apperr.ReferentialIntegrity or lookup failures
*/
func (service *Service) Preview(context context.Context, input PreviewInput) (*Preview, error) {
	codes := input.codes()
	designNo := normalize.Text(input.DesignNo)

	validator := &validate.Validator{}
	for _, kind := range vocabulary.Kinds {
		validator.Required(kind.String(), codes[kind])
	}
	product.ValidateDesignNo(validator, FieldDesignNo, designNo)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	var mu sync.Mutex
	resolved := make(map[vocabulary.Kind]*vocabulary.Attribute, len(codes))

	group, groupContext := errgroup.WithContext(context)
	for kind, code := range codes {
		group.Go(func() error {
			attribute, err := service.attributes.GetByCode(groupContext, kind, code)
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

	var missing []apperr.FieldError
	attributes := make([]*vocabulary.Attribute, 0, len(vocabulary.Kinds))
	for _, kind := range vocabulary.Kinds {
		attribute := resolved[kind]
		if attribute == nil {
			missing = append(missing, apperr.FieldError{
				Field:   kind.String(),
				Message: kind.Resource() + " code " + normalize.Code(codes[kind]) + " not found",
			})
			continue
		}
		attributes = append(attributes, attribute)
	}
	if len(missing) > 0 {
		return nil, apperr.ReferentialIntegrity("Related master data not found", missing...)
	}

	encoded, err := skucode.Encode(vocabulary.CodeSet(resolved, designNo))
	if err != nil {
		return nil, err
	}

	return &Preview{Codes: encoded, Attributes: attributes}, nil
}
