// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/dberr"
)

/*
TestWrap verifies the classification of driver errors into application errors.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperr.CodeNotFound},
		{"unique_violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "uq_season_code"}, apperr.CodeConflict},
		{"bad_uuid", &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}, apperr.CodeNotFound},
		{"other_driver_error", errors.New("connection reset"), apperr.CodeInternal},
		{"already_classified", apperr.CapacityExceeded("Season", 1000), apperr.CodeCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			assert.True(t, apperr.HasCode(wrapped, tt.wantCode), "got %v", wrapped)
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "noop"))
}
