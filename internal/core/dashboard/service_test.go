// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dashboard_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/skumaster/internal/core/dashboard"
	"github.com/taibuivan/skumaster/internal/core/product"
	"github.com/taibuivan/skumaster/internal/core/vocabulary"
)

// # Test Doubles

type vocabularyCounts map[vocabulary.Kind]int

func (counts vocabularyCounts) Counts(_ context.Context) (map[vocabulary.Kind]int, error) {
	return counts, nil
}

type tokenCount struct {
	total int
	err   error
}

func (count tokenCount) Count(_ context.Context) (int, error) {
	return count.total, count.err
}

type productReader struct {
	products  []*product.Details
	lastLimit int
	recentErr error
}

func (reader *productReader) Count(_ context.Context) (int, error) {
	return len(reader.products), nil
}

func (reader *productReader) Recent(_ context.Context, limit int) ([]*product.Details, error) {
	reader.lastLimit = limit
	if reader.recentErr != nil {
		return nil, reader.recentErr
	}
	return reader.products[:min(limit, len(reader.products))], nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleProducts(n int) []*product.Details {
	products := make([]*product.Details, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, &product.Details{Product: &product.Product{DesignNo: "200" + string(rune('0'+i))}})
	}
	return products
}

// # Tests

/*
TestService_Summary aggregates every count and caps the recent list.
*/
func TestService_Summary(t *testing.T) {
	reader := &productReader{products: sampleProducts(7)}
	service := dashboard.NewService(
		vocabularyCounts{vocabulary.KindSeason: 3, vocabulary.KindColor: 6},
		tokenCount{total: 62},
		reader,
		discard(),
	)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Vocabularies["season"])
	assert.Equal(t, 6, summary.Vocabularies["color"])
	assert.Equal(t, 0, summary.Vocabularies["size"])
	assert.Len(t, summary.Vocabularies, len(vocabulary.Kinds))
	assert.Equal(t, 62, summary.MappingTokens)
	assert.Equal(t, 7, summary.Products)
	assert.Equal(t, dashboard.RecentLimit, reader.lastLimit)
	assert.Len(t, summary.RecentProducts, dashboard.RecentLimit)
}

/*
TestService_Summary_Empty returns an empty list rather than null.
*/
func TestService_Summary_Empty(t *testing.T) {
	service := dashboard.NewService(vocabularyCounts{}, tokenCount{}, &productReader{}, discard())

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summary.RecentProducts)
	assert.Empty(t, summary.RecentProducts)
}

/*
TestService_Summary_Failure aborts when any lookup fails.
*/
func TestService_Summary_Failure(t *testing.T) {
	service := dashboard.NewService(vocabularyCounts{}, tokenCount{err: errors.New("connection reset")}, &productReader{}, discard())

	_, err := service.Summary(context.Background())
	assert.EqualError(t, err, "connection reset")

	service = dashboard.NewService(vocabularyCounts{}, tokenCount{}, &productReader{recentErr: errors.New("timeout")}, discard())
	_, err = service.Summary(context.Background())
	assert.EqualError(t, err, "timeout")
}

/*
TestHandler_Summary serves the summary envelope.
*/
func TestHandler_Summary(t *testing.T) {
	service := dashboard.NewService(vocabularyCounts{vocabulary.KindSize: 5}, tokenCount{total: 1}, &productReader{}, discard())

	router := chi.NewRouter()
	router.Mount("/dashboard", dashboard.NewHandler(service).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"size":5`)
	assert.Contains(t, recorder.Body.String(), `"mapping_tokens":1`)
}
