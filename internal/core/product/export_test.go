// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/taibuivan/skumaster/internal/core/product"
	"github.com/taibuivan/skumaster/internal/core/vocabulary"
)

/*
TestService_Export writes a workbook and reads it back.
*/
func TestService_Export(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.service.Create(ctx, f.input())
	require.NoError(t, err)

	f.catalog.remove(vocabulary.KindSize, f.rows[vocabulary.KindSize].ID)

	file, filename, err := f.service.Export(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "products_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))

	var buffer bytes.Buffer
	require.NoError(t, file.Write(&buffer))
	require.NoError(t, file.Close())

	workbook, err := excelize.OpenReader(&buffer)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(product.ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	header := rows[0]
	assert.Equal(t, "SKU Code", header[0])
	assert.Equal(t, "Season", header[7])

	row := rows[1]
	assert.Equal(t, "S26-TP-HO-2006-MLT-BLK-ARB-NP-MDF-S1-F1-S", row[0])
	assert.Equal(t, "0010040082006016021027031035041044047", row[3])
	assert.Equal(t, "2006", row[4])
	assert.Equal(t, "S26", row[7])

	// The deleted size leaves an empty cell
	sizeColumn := 7 + len(vocabulary.Kinds) - 1
	if sizeColumn < len(row) {
		assert.Empty(t, row[sizeColumn])
	}
}

/*
TestHandler_Export serves the workbook as an attachment.
*/
func TestHandler_Export(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), f.input())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Mount("/products", product.NewHandler(f.service).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products/export", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Disposition"), "attachment;")
	assert.Contains(t, recorder.Header().Get("Content-Type"), "spreadsheetml")

	workbook, err := excelize.OpenReader(recorder.Body)
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(product.ExportSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

/*
TestHandler_List returns the paginated envelope.
*/
func TestHandler_List(t *testing.T) {
	f := newFixture()

	_, err := f.service.Create(context.Background(), f.input())
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Mount("/products", product.NewHandler(f.service).Routes())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/products?page=1&limit=10", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"sku_code":"S26-TP-HO-2006-MLT-BLK-ARB-NP-MDF-S1-F1-S"`)
	assert.Contains(t, recorder.Body.String(), `"total":1`)
}
