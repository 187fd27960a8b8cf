// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/taibuivan/skumaster/internal/platform/constants"
	"github.com/taibuivan/skumaster/internal/platform/respond"
)

// Checker reports whether one dependency is reachable.
type Checker func(context context.Context) error

// HealthDependencies holds the checkers run by /ready. Nil checkers are skipped.
type HealthDependencies struct {
	Database Checker
	Cache    Checker
}

type dependencyCheck struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready handlers.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

/*
GET /ready.

Response:
  - 200: Every dependency answered
  - 503: At least one dependency failed; the body names it
*/
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	dependencies := []struct {
		name  string
		check Checker
	}{
		{"postgres", handler.dependencies.Database},
		{"redis", handler.dependencies.Cache},
	}

	checks := make([]dependencyCheck, 0, len(dependencies))
	ready := true

	for _, dependency := range dependencies {
		if dependency.check == nil {
			continue
		}

		result := dependencyCheck{Name: dependency.name, OK: true}
		if err := dependency.check(request.Context()); err != nil {
			result.OK = false
			result.Error = err.Error()
			ready = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", dependency.name), slog.Any("error", err))
		}
		checks = append(checks, result)
	}

	status, code := "ready", http.StatusOK
	if !ready {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	respond.JSON(writer, code, map[string]any{
		constants.FieldData: map[string]any{
			constants.FieldStatus: status,
			constants.FieldChecks: checks,
		},
	})
}
