// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mapping

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/skumaster/internal/core/skucode"
	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/ctxutil"
	"github.com/taibuivan/skumaster/internal/platform/validate"
	"github.com/taibuivan/skumaster/pkg/normalize"
	"github.com/taibuivan/skumaster/pkg/slice"
)

const resourceName = "Mapping token"

// Service orchestrates business rules for mapping tokens and serves the
// decoder dictionary through a read-through cache.
type Service struct {
	repo   Repository
	cache  DictionaryCache
	logger *slog.Logger
}

// NewService constructs a new mapping [Service]. cache may be nil.
func NewService(repo Repository, cache DictionaryCache, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: cache, logger: logger}
}

// # Read Methods

// List returns every token in creation order.
func (service *Service) List(context context.Context) ([]*Token, error) {
	return service.repo.List(context)
}

// Get retrieves a single token by id.
func (service *Service) Get(context context.Context, id string) (*Token, error) {
	token, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, relabelNotFound(err)
	}
	return token, nil
}

// Count returns the number of tokens.
func (service *Service) Count(context context.Context) (int, error) {
	return service.repo.Count(context)
}

/*
Dictionary returns the decoder dictionary.

Description: The snapshot of the current cache generation is used when
present. On a miss the dictionary is rebuilt from the repository and stored
under the generation observed before the read. A write committed meanwhile has
already moved the generation on, so the rebuilt snapshot is never served.
Cache failures are logged and the repository is used directly.

Parameters:
  - context: context.Context

Returns:
  - *skucode.Dictionary: Index over every token
  - error: Repository failures
*/
func (service *Service) Dictionary(context context.Context) (*skucode.Dictionary, error) {
	logger := ctxutil.GetLogger(context, service.logger)

	var (
		generation int64
		writeBack  bool
	)

	if service.cache != nil {
		entries, current, found, err := service.cache.Get(context)
		switch {
		case err != nil:
			logger.WarnContext(context, "dictionary_cache_read_failed", slog.Any("error", err))
		case found:
			return skucode.NewDictionary(entries), nil
		default:
			generation, writeBack = current, true
		}
	}

	tokens, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	entries := slice.Map(tokens, func(token *Token) skucode.Entry { return token.Entry() })

	if writeBack {
		if err := service.cache.Set(context, generation, entries); err != nil {
			logger.WarnContext(context, "dictionary_cache_write_failed", slog.Any("error", err))
		}
	}

	return skucode.NewDictionary(entries), nil
}

// # Write Methods

/*
Create validates and persists a new token.

Parameters:
  - context: context.Context
  - input: Input

Returns:
  - *Token: The stored token
  - error: Validation, duplicate token or storage errors
*/
func (service *Service) Create(context context.Context, input Input) (*Token, error) {
	input = sanitize(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	token := &Token{
		Token:         input.Token,
		NumericCode:   input.NumericCode,
		DescriptionAr: input.DescriptionAr,
		DescriptionEn: input.DescriptionEn,
	}

	if err := service.repo.Create(context, token); err != nil {
		return nil, relabelConflict(err, input.Token)
	}

	service.invalidate(context)

	ctxutil.GetLogger(context, service.logger).InfoContext(context, "mapping_token_created",
		slog.String("id", token.ID),
		slog.String("token", token.Token),
		slog.Int("numeric_code", token.NumericCode),
	)

	return token, nil
}

// Update replaces every editable field of an existing token.
func (service *Service) Update(context context.Context, id string, input Input) (*Token, error) {
	input = sanitize(input)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	token := &Token{
		ID:            id,
		Token:         input.Token,
		NumericCode:   input.NumericCode,
		DescriptionAr: input.DescriptionAr,
		DescriptionEn: input.DescriptionEn,
	}

	if err := service.repo.Update(context, token); err != nil {
		return nil, relabelConflict(relabelNotFound(err), input.Token)
	}

	service.invalidate(context)
	return token, nil
}

// Delete removes a token.
func (service *Service) Delete(context context.Context, id string) error {
	removed, err := service.repo.Delete(context, id)
	if err != nil {
		return err
	}
	if !removed {
		return apperr.NotFound(resourceName)
	}

	service.invalidate(context)

	ctxutil.GetLogger(context, service.logger).InfoContext(context, "mapping_token_deleted", slog.String("id", id))
	return nil
}

// # Helpers

// invalidate drops the cached dictionary after a mutation.
func (service *Service) invalidate(context context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(context); err != nil {
		ctxutil.GetLogger(context, service.logger).WarnContext(context, "dictionary_cache_invalidate_failed", slog.Any("error", err))
	}
}

func sanitize(input Input) Input {
	input.Token = normalize.Code(input.Token)
	input.DescriptionAr = normalize.Text(input.DescriptionAr)
	input.DescriptionEn = normalize.OptionalText(input.DescriptionEn)
	return input
}

func validateInput(input Input) error {
	validator := &validate.Validator{}

	validator.Required(FieldToken, input.Token).
		MaxLen(FieldToken, input.Token, MaxTokenLength).
		Code(FieldToken, input.Token)

	validator.Custom(FieldNumericCode, input.NumericCode < 0, "Must be zero or greater")

	validator.Required(FieldDescriptionAr, input.DescriptionAr).
		MaxLen(FieldDescriptionAr, input.DescriptionAr, MaxDescriptionLength)

	if input.DescriptionEn != nil {
		validator.MaxLen(FieldDescriptionEn, *input.DescriptionEn, MaxDescriptionLength)
	}

	return validator.Err()
}

func relabelNotFound(err error) error {
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return apperr.NotFound(resourceName)
	}
	return err
}

func relabelConflict(err error, token string) error {
	if apperr.HasCode(err, apperr.CodeConflict) {
		conflict := apperr.Conflict(fmt.Sprintf("%s %q already exists", resourceName, token))
		conflict.Cause = err
		return conflict
	}
	return err
}
