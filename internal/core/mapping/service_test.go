// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package mapping_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/skumaster/internal/core/mapping"
	"github.com/taibuivan/skumaster/internal/core/skucode"
	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/dberr"
	"github.com/taibuivan/skumaster/pkg/pointer"
)

// # Test Doubles

type memoryRepository struct {
	tokens   []*mapping.Token
	sequence int
	lists    int
	// afterList runs once, after a List has taken its snapshot
	afterList func()
}

func (repo *memoryRepository) List(_ context.Context) ([]*mapping.Token, error) {
	repo.lists++
	snapshot := append([]*mapping.Token(nil), repo.tokens...)
	if hook := repo.afterList; hook != nil {
		repo.afterList = nil
		hook()
	}
	return snapshot, nil
}

func (repo *memoryRepository) FindByID(_ context.Context, id string) (*mapping.Token, error) {
	for _, token := range repo.tokens {
		if token.ID == id {
			return token, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) Create(_ context.Context, token *mapping.Token) error {
	for _, existing := range repo.tokens {
		if existing.Token == token.Token {
			return apperr.Conflict("duplicate")
		}
	}
	repo.sequence++
	token.ID = fmt.Sprintf("id-%03d", repo.sequence)
	repo.tokens = append(repo.tokens, token)
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, token *mapping.Token) error {
	for i, existing := range repo.tokens {
		if existing.ID == token.ID {
			repo.tokens[i] = token
			return nil
		}
	}
	return dberr.ErrNotFound
}

func (repo *memoryRepository) Delete(_ context.Context, id string) (bool, error) {
	for i, existing := range repo.tokens {
		if existing.ID == id {
			repo.tokens = append(repo.tokens[:i], repo.tokens[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (repo *memoryRepository) Count(_ context.Context) (int, error) {
	return len(repo.tokens), nil
}

type memoryCache struct {
	snapshots   map[int64][]skucode.Entry
	generation  int64
	failing     bool
	invalidated int
}

func (cache *memoryCache) Get(_ context.Context) ([]skucode.Entry, int64, bool, error) {
	if cache.failing {
		return nil, 0, false, errors.New("connection refused")
	}
	entries, found := cache.snapshots[cache.generation]
	return entries, cache.generation, found, nil
}

func (cache *memoryCache) Set(_ context.Context, generation int64, entries []skucode.Entry) error {
	if cache.failing {
		return errors.New("connection refused")
	}
	if cache.snapshots == nil {
		cache.snapshots = make(map[int64][]skucode.Entry)
	}
	cache.snapshots[generation] = entries
	return nil
}

func (cache *memoryCache) Invalidate(_ context.Context) error {
	cache.invalidated++
	cache.generation++
	return nil
}

func (cache *memoryCache) cached() bool {
	_, found := cache.snapshots[cache.generation]
	return found
}

func newService(repo mapping.Repository, cache mapping.DictionaryCache) *mapping.Service {
	return mapping.NewService(repo, cache, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// # Tests

/*
TestService_Create normalizes the token and stores the row.
*/
func TestService_Create(t *testing.T) {
	repo := &memoryRepository{}
	cache := &memoryCache{}
	service := newService(repo, cache)

	token, err := service.Create(context.Background(), mapping.Input{
		Token:         " s26 ",
		NumericCode:   1,
		DescriptionAr: "موسم صيف 26",
		DescriptionEn: pointer.To(" Summer Season 26 "),
	})
	require.NoError(t, err)

	assert.Equal(t, "S26", token.Token)
	assert.Equal(t, "Summer Season 26", pointer.Val(token.DescriptionEn))
	assert.Equal(t, 1, cache.invalidated)
}

/*
TestService_Create_Validation covers the field rules.
*/
func TestService_Create_Validation(t *testing.T) {
	long := make([]byte, mapping.MaxTokenLength+1)
	for i := range long {
		long[i] = 'A'
	}

	tests := []struct {
		name  string
		input mapping.Input
		field string
	}{
		{"missing_token", mapping.Input{DescriptionAr: "x"}, mapping.FieldToken},
		{"token_too_long", mapping.Input{Token: string(long), DescriptionAr: "x"}, mapping.FieldToken},
		{"token_with_separator", mapping.Input{Token: "S-26", DescriptionAr: "x"}, mapping.FieldToken},
		{"negative_numeric_code", mapping.Input{Token: "S26", NumericCode: -1, DescriptionAr: "x"}, mapping.FieldNumericCode},
		{"missing_description", mapping.Input{Token: "S26"}, mapping.FieldDescriptionAr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newService(&memoryRepository{}, nil).Create(context.Background(), tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestService_Create_ZeroNumericCode accepts zero, which the table allows.
*/
func TestService_Create_ZeroNumericCode(t *testing.T) {
	token, err := newService(&memoryRepository{}, nil).Create(context.Background(), mapping.Input{Token: "NONE", DescriptionAr: "لا شيء"})
	require.NoError(t, err)
	assert.Zero(t, token.NumericCode)
}

/*
TestService_Create_DuplicateToken reports a conflict naming the token.
*/
func TestService_Create_DuplicateToken(t *testing.T) {
	service := newService(&memoryRepository{}, nil)
	ctx := context.Background()

	_, err := service.Create(ctx, mapping.Input{Token: "BLK", NumericCode: 21, DescriptionAr: "أسود"})
	require.NoError(t, err)

	_, err = service.Create(ctx, mapping.Input{Token: "blk", NumericCode: 22, DescriptionAr: "أسود"})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Contains(t, err.Error(), `"BLK"`)
}

/*
TestService_UpdateAndDelete covers the not found paths and cache invalidation.
*/
func TestService_UpdateAndDelete(t *testing.T) {
	repo := &memoryRepository{}
	cache := &memoryCache{}
	service := newService(repo, cache)
	ctx := context.Background()

	created, err := service.Create(ctx, mapping.Input{Token: "HO", NumericCode: 8, DescriptionAr: "هودي"})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, mapping.Input{Token: "HOD", NumericCode: 9, DescriptionAr: "هودي"})
	require.NoError(t, err)
	assert.Equal(t, "HOD", updated.Token)
	assert.Equal(t, 9, updated.NumericCode)

	_, err = service.Update(ctx, "missing", mapping.Input{Token: "X", DescriptionAr: "x"})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.Equal(t, "Mapping token not found", err.Error())

	_, err = service.Get(ctx, "missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.True(t, apperr.HasCode(service.Delete(ctx, created.ID), apperr.CodeNotFound))

	assert.Equal(t, 3, cache.invalidated)
}

/*
TestService_Dictionary_ReadThrough checks that the cache is filled once and
reloaded after a mutation.
*/
func TestService_Dictionary_ReadThrough(t *testing.T) {
	repo := &memoryRepository{}
	cache := &memoryCache{}
	service := newService(repo, cache)
	ctx := context.Background()

	_, err := service.Create(ctx, mapping.Input{Token: "S26", NumericCode: 1, DescriptionAr: "موسم صيف 26"})
	require.NoError(t, err)

	dictionary, err := service.Dictionary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, dictionary.Len())
	assert.True(t, cache.cached())

	_, err = service.Dictionary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lists)

	_, err = service.Create(ctx, mapping.Input{Token: "W26", NumericCode: 2, DescriptionAr: "موسم شتاء 26"})
	require.NoError(t, err)

	dictionary, err = service.Dictionary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dictionary.Len())
	assert.Equal(t, 2, repo.lists)

	entry, ok := dictionary.LookupNumber(2)
	require.True(t, ok)
	assert.Equal(t, "W26", entry.Token)
}

/*
TestService_Dictionary_WriteDuringRebuild checks that a rebuild which read the
table before a concurrent write does not hide that write from later reads.
*/
func TestService_Dictionary_WriteDuringRebuild(t *testing.T) {
	repo := &memoryRepository{}
	cache := &memoryCache{}
	service := newService(repo, cache)
	ctx := context.Background()

	_, err := service.Create(ctx, mapping.Input{Token: "S26", NumericCode: 1, DescriptionAr: "موسم صيف 26"})
	require.NoError(t, err)

	// The rebuild's read completes, then the write commits before the snapshot is stored
	repo.afterList = func() {
		_, err := service.Create(ctx, mapping.Input{Token: "BLK", NumericCode: 21, DescriptionAr: "أسود"})
		require.NoError(t, err)
	}

	stale, err := service.Dictionary(ctx)
	require.NoError(t, err)
	_, ok := stale.LookupToken("BLK")
	assert.False(t, ok)
	assert.False(t, cache.cached())

	fresh, err := service.Dictionary(ctx)
	require.NoError(t, err)
	entry, ok := fresh.LookupToken("BLK")
	require.True(t, ok)
	assert.Equal(t, 21, entry.NumericCode)
	assert.True(t, cache.cached())
}

/*
TestService_Dictionary_CacheUnavailable falls back to the repository.
*/
func TestService_Dictionary_CacheUnavailable(t *testing.T) {
	repo := &memoryRepository{}
	service := newService(repo, &memoryCache{failing: true})
	ctx := context.Background()

	_, err := service.Create(ctx, mapping.Input{Token: "S26", NumericCode: 1, DescriptionAr: "موسم صيف 26"})
	require.NoError(t, err)

	dictionary, err := service.Dictionary(ctx)
	require.NoError(t, err)

	entry, ok := dictionary.LookupToken("S26")
	require.True(t, ok)
	assert.Equal(t, 1, entry.NumericCode)
}

/*
TestService_Dictionary_SharedNumericCode checks that the earliest token wins.
*/
func TestService_Dictionary_SharedNumericCode(t *testing.T) {
	service := newService(&memoryRepository{}, nil)
	ctx := context.Background()

	for _, token := range []string{"S26", "SUM26"} {
		_, err := service.Create(ctx, mapping.Input{Token: token, NumericCode: 1, DescriptionAr: token})
		require.NoError(t, err)
	}

	dictionary, err := service.Dictionary(ctx)
	require.NoError(t, err)

	entry, ok := dictionary.LookupNumber(1)
	require.True(t, ok)
	assert.Equal(t, "S26", entry.Token)
}
