// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package vocabulary_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/skumaster/internal/core/vocabulary"
	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/constants"
	"github.com/taibuivan/skumaster/internal/platform/dberr"
	"github.com/taibuivan/skumaster/pkg/pointer"
)

// # Test Doubles

// memoryRepository mirrors the allocation rules of the postgres store in memory.
type memoryRepository struct {
	mu        sync.Mutex
	rows      map[vocabulary.Kind][]*vocabulary.Attribute
	lastValue map[vocabulary.Kind]int
	sequence  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		rows:      make(map[vocabulary.Kind][]*vocabulary.Attribute),
		lastValue: make(map[vocabulary.Kind]int),
	}
}

func (repo *memoryRepository) List(_ context.Context, kind vocabulary.Kind) ([]*vocabulary.Attribute, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return append([]*vocabulary.Attribute(nil), repo.rows[kind]...), nil
}

func (repo *memoryRepository) FindByID(_ context.Context, kind vocabulary.Kind, id string) (*vocabulary.Attribute, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, row := range repo.rows[kind] {
		if row.ID == id {
			clone := *row
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) FindByCode(_ context.Context, kind vocabulary.Kind, code string) (*vocabulary.Attribute, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, row := range repo.rows[kind] {
		if row.Code == code {
			clone := *row
			return &clone, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (repo *memoryRepository) Create(_ context.Context, attribute *vocabulary.Attribute) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	currentMax := 0
	for _, row := range repo.rows[attribute.Kind] {
		if row.Code == attribute.Code {
			return apperr.Conflict("duplicate")
		}
		currentMax = max(currentMax, row.NumericCode)
	}

	next, err := vocabulary.NextNumericCode(attribute.Kind, repo.lastValue[attribute.Kind], currentMax)
	if err != nil {
		return err
	}

	repo.sequence++
	repo.lastValue[attribute.Kind] = next
	attribute.ID = fmt.Sprintf("id-%d", repo.sequence)
	attribute.NumericCode = next

	clone := *attribute
	repo.rows[attribute.Kind] = append(repo.rows[attribute.Kind], &clone)
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, attribute *vocabulary.Attribute) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var target *vocabulary.Attribute
	for _, row := range repo.rows[attribute.Kind] {
		if row.ID == attribute.ID {
			target = row
		} else if row.Code == attribute.Code {
			return apperr.Conflict("duplicate")
		}
	}
	if target == nil {
		return dberr.ErrNotFound
	}

	attribute.NumericCode = target.NumericCode
	*target = *attribute
	return nil
}

func (repo *memoryRepository) Delete(_ context.Context, kind vocabulary.Kind, id string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for i, row := range repo.rows[kind] {
		if row.ID == id {
			repo.rows[kind] = append(repo.rows[kind][:i], repo.rows[kind][i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (repo *memoryRepository) Count(_ context.Context, kind vocabulary.Kind) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return len(repo.rows[kind]), nil
}

type staticReferences struct{ count int }

func (refs staticReferences) CountReferences(context.Context, vocabulary.Kind, string) (int, error) {
	return refs.count, nil
}

func newService(repo vocabulary.Repository) *vocabulary.Service {
	return vocabulary.NewService(repo, staticReferences{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seasonInput(code string) vocabulary.Input {
	return vocabulary.Input{Code: code, NameAr: "موسم " + code}
}

// # Allocation

/*
TestNextNumericCode covers the pure allocation rule.
*/
func TestNextNumericCode(t *testing.T) {
	tests := []struct {
		name       string
		lastValue  int
		currentMax int
		want       int
		capacity   bool
	}{
		{"empty_vocabulary", 0, 0, 1, false},
		{"high_water_mark_wins", 5, 3, 6, false},
		{"table_max_wins", 3, 7, 8, false},
		{"last_available_code", 999, 999, 1000, false},
		{"full_by_sequence", 1000, 0, 0, true},
		{"full_by_table", 0, 1000, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vocabulary.NextNumericCode(vocabulary.KindSeason, tt.lastValue, tt.currentMax)
			if tt.capacity {
				require.Error(t, err)
				assert.True(t, apperr.HasCode(err, apperr.CodeCapacityExceeded))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestService_Create_AllocatesSequentialCodes checks that the first N rows get 1..N.
*/
func TestService_Create_AllocatesSequentialCodes(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	for i, code := range []string{"s26", "W26", " S27 "} {
		attribute, err := service.Create(ctx, vocabulary.KindSeason, seasonInput(code))
		require.NoError(t, err)
		assert.Equal(t, i+1, attribute.NumericCode)
	}

	rows, err := service.List(ctx, vocabulary.KindSeason)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "S26", rows[0].Code)
	assert.Equal(t, "S27", rows[2].Code)
}

/*
TestService_Create_IndependentKinds checks that each vocabulary counts on its own.
*/
func TestService_Create_IndependentKinds(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	season, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("S26"))
	require.NoError(t, err)
	category, err := service.Create(ctx, vocabulary.KindCategory, vocabulary.Input{Code: "TP", NameAr: "توب"})
	require.NoError(t, err)

	assert.Equal(t, 1, season.NumericCode)
	assert.Equal(t, 1, category.NumericCode)
}

/*
TestService_Create_NeverReusesDeletedCode checks that a retired code stays retired.
*/
func TestService_Create_NeverReusesDeletedCode(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("S26"))
	require.NoError(t, err)
	last, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("W26"))
	require.NoError(t, err)
	require.Equal(t, 2, last.NumericCode)

	require.NoError(t, service.Delete(ctx, vocabulary.KindSeason, last.ID))

	next, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("S27"))
	require.NoError(t, err)
	assert.Equal(t, 3, next.NumericCode)
}

/*
TestService_Create_CapacityExceeded checks that a full vocabulary rejects creation without mutation.
*/
func TestService_Create_CapacityExceeded(t *testing.T) {
	repo := newMemoryRepository()
	repo.lastValue[vocabulary.KindSize] = constants.MaxNumericCode - 1
	service := newService(repo)
	ctx := context.Background()

	last, err := service.Create(ctx, vocabulary.KindSize, vocabulary.Input{Code: "XL", NameAr: "كبير"})
	require.NoError(t, err)
	assert.Equal(t, constants.MaxNumericCode, last.NumericCode)

	_, err = service.Create(ctx, vocabulary.KindSize, vocabulary.Input{Code: "XXL", NameAr: "كبير جدا"})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeCapacityExceeded))

	total, err := repo.Count(ctx, vocabulary.KindSize)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, constants.MaxNumericCode, repo.lastValue[vocabulary.KindSize])
}

/*
TestService_Create_Concurrent checks that concurrent creations never share a code.
*/
func TestService_Create_Concurrent(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	const workers = 40
	codes := make([]int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			attribute, err := service.Create(ctx, vocabulary.KindFabric, vocabulary.Input{Code: fmt.Sprintf("F%d", i), NameAr: "قماش"})
			if assert.NoError(t, err) {
				codes[i] = attribute.NumericCode
			}
		}(i)
	}
	wg.Wait()

	sort.Ints(codes)
	for i, code := range codes {
		assert.Equal(t, i+1, code)
	}
}

/*
TestService_Create_Validation tests the input rules.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		kind  vocabulary.Kind
		input vocabulary.Input
		field string
	}{
		{"missing_code", vocabulary.KindSeason, vocabulary.Input{NameAr: "x"}, vocabulary.FieldCode},
		{"hyphenated_code", vocabulary.KindSeason, vocabulary.Input{Code: "S-26", NameAr: "x"}, vocabulary.FieldCode},
		{"code_too_long", vocabulary.KindSeason, vocabulary.Input{Code: "ABCDEFGHIJK", NameAr: "x"}, vocabulary.FieldCode},
		{"missing_name_ar", vocabulary.KindSeason, vocabulary.Input{Code: "S26"}, vocabulary.FieldNameAr},
		{"bad_hex", vocabulary.KindColor, vocabulary.Input{Code: "BLK", NameAr: "أسود", HexValue: pointer.To("black")}, vocabulary.FieldHexValue},
		{"bad_category_id", vocabulary.KindType, vocabulary.Input{Code: "HO", NameAr: "هودي", CategoryID: pointer.To("top")}, vocabulary.FieldCategoryID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(newMemoryRepository())

			_, err := service.Create(context.Background(), tt.kind, tt.input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestService_Create_KindSpecificFields checks that extras are kept only where they belong.
*/
func TestService_Create_KindSpecificFields(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	color, err := service.Create(ctx, vocabulary.KindColor, vocabulary.Input{Code: "BLK", NameAr: "أسود", HexValue: pointer.To("#1a1a1a")})
	require.NoError(t, err)
	require.NotNil(t, color.HexValue)
	assert.Equal(t, "#1A1A1A", *color.HexValue)

	season, err := service.Create(ctx, vocabulary.KindSeason, vocabulary.Input{Code: "S26", NameAr: "صيف", HexValue: pointer.To("#FFFFFF")})
	require.NoError(t, err)
	assert.Nil(t, season.HexValue)
}

/*
TestService_Create_DuplicateCode checks the conflict message names the vocabulary.
*/
func TestService_Create_DuplicateCode(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("S26"))
	require.NoError(t, err)

	_, err = service.Create(ctx, vocabulary.KindSeason, seasonInput("s26"))
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
	assert.Contains(t, err.Error(), "Season")
}

/*
TestService_Update_PreservesNumericCode checks that edits never move the numeric code.
*/
func TestService_Update_PreservesNumericCode(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("S26"))
	require.NoError(t, err)
	second, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("W26"))
	require.NoError(t, err)

	updated, err := service.Update(ctx, vocabulary.KindSeason, second.ID, vocabulary.Input{
		Code: "W27", NameAr: "شتاء", NameEn: pointer.To("Winter"),
	})
	require.NoError(t, err)
	assert.Equal(t, second.NumericCode, updated.NumericCode)
	assert.Equal(t, "W27", updated.Code)

	stored, err := service.Get(ctx, vocabulary.KindSeason, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.NumericCode)
	assert.Equal(t, "Winter", pointer.Val(stored.NameEn))
}

/*
TestService_NotFound checks that missing rows are reported with the vocabulary name.
*/
func TestService_NotFound(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Get(ctx, vocabulary.KindPrintType, "missing")
	require.Error(t, err)
	assert.Equal(t, "Print type not found", err.Error())

	_, err = service.Update(ctx, vocabulary.KindSeason, "missing", seasonInput("S26"))
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	err = service.Delete(ctx, vocabulary.KindSeason, "missing")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = service.List(ctx, vocabulary.Kind("brand"))
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestService_Delete_WithReferences checks that referenced rows can still be removed.
*/
func TestService_Delete_WithReferences(t *testing.T) {
	repo := newMemoryRepository()
	service := vocabulary.NewService(repo, staticReferences{count: 3}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	season, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("S26"))
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, vocabulary.KindSeason, season.ID))

	total, err := repo.Count(ctx, vocabulary.KindSeason)
	require.NoError(t, err)
	assert.Zero(t, total)
}

/*
TestService_Counts checks the per-kind totals.
*/
func TestService_Counts(t *testing.T) {
	service := newService(newMemoryRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, vocabulary.KindSeason, seasonInput("S26"))
	require.NoError(t, err)

	counts, err := service.Counts(ctx)
	require.NoError(t, err)
	assert.Len(t, counts, len(vocabulary.Kinds))
	assert.Equal(t, 1, counts[vocabulary.KindSeason])
	assert.Zero(t, counts[vocabulary.KindSize])
}
