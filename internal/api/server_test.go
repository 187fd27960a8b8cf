// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/skumaster/internal/api"
	"github.com/taibuivan/skumaster/internal/core/dashboard"
	"github.com/taibuivan/skumaster/internal/core/decoder"
	"github.com/taibuivan/skumaster/internal/core/mapping"
	"github.com/taibuivan/skumaster/internal/core/product"
	"github.com/taibuivan/skumaster/internal/core/vocabulary"
	"github.com/taibuivan/skumaster/internal/platform/config"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func healthy(context.Context) error { return nil }

/*
TestReadiness reports 503 while any dependency is down.
*/
func TestReadiness(t *testing.T) {
	tests := []struct {
		name   string
		cache  api.Checker
		status int
		body   string
	}{
		{"ready", healthy, http.StatusOK, `"status":"ready"`},
		{"redis_down", func(context.Context) error { return errors.New("dial tcp: refused") }, http.StatusServiceUnavailable, `"error":"dial tcp: refused"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, readiness := api.NewHealthHandlers(api.HealthDependencies{Database: healthy, Cache: tt.cache}, discard())

			recorder := httptest.NewRecorder()
			readiness(recorder, httptest.NewRequest(http.MethodGet, "/ready", nil))

			assert.Equal(t, tt.status, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.body)
		})
	}
}

/*
TestServer_Routes mounts the infrastructure and API route groups.
*/
func TestServer_Routes(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{}, discard())
	server := api.NewServer(ctx, &config.Config{ServerPort: "0", Environment: "test"}, discard(), api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Vocabulary: vocabulary.NewHandler(nil),
		Mapping:    mapping.NewHandler(nil),
		Product:    product.NewHandler(nil),
		Decoder:    decoder.NewHandler(nil),
		Dashboard:  dashboard.NewHandler(nil),
	})

	recorder := httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	// Malformed bodies are rejected before any service is reached
	recorder = httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/print-types", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	server.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/sku/decode", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
