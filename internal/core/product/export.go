// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/taibuivan/skumaster/internal/core/vocabulary"
	"github.com/taibuivan/skumaster/pkg/pointer"
	"github.com/taibuivan/skumaster/pkg/slice"
)

// ExportSheet is the name of the worksheet holding the product rows.
const ExportSheet = "Products"

// exportHeaders precede one code column per vocabulary.
var exportHeaders = []string{
	"SKU Code", "Master Design Code", "SKU Segmented", "SKU Compact",
	"Design No", "Product Name (AR)", "Product Name (EN)",
}

/*
Export renders every product as an XLSX workbook.

Description: One row per product, newest first. Each vocabulary gets a column
holding the attribute code; a deleted attribute leaves its cell empty.

Parameters:
  - context: context.Context

Returns:
  - *excelize.File: Workbook to be written by the caller, who must Close it
  - string: Suggested file name
  - error: Retrieval or rendering failures
*/
func (service *Service) Export(context context.Context) (*excelize.File, string, error) {
	products, err := service.repo.All(context)
	if err != nil {
		return nil, "", err
	}

	details, err := service.hydrate(context, products)
	if err != nil {
		return nil, "", err
	}

	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", ExportSheet); err != nil {
		_ = file.Close()
		return nil, "", fmt.Errorf("export_sheet_rename_failed: %w", err)
	}

	headers := append([]string(nil), exportHeaders...)
	for _, kind := range vocabulary.Kinds {
		headers = append(headers, kind.Resource())
	}
	headers = append(headers, "Notes", "Created At")

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		_ = file.Close()
		return nil, "", fmt.Errorf("export_style_failed: %w", err)
	}

	if err := writeRow(file, 1, slice.Map(headers, func(header string) any { return header })); err != nil {
		_ = file.Close()
		return nil, "", err
	}
	lastColumn, _ := excelize.ColumnNumberToName(len(headers))
	_ = file.SetCellStyle(ExportSheet, "A1", lastColumn+"1", headerStyle)

	for i, detail := range details {
		cells := []any{
			detail.SKUCode,
			detail.MasterDesignCode,
			detail.SKUCodedSegmented,
			detail.SKUCodedCompact,
			detail.DesignNo,
			detail.ProductNameAr,
			pointer.Val(detail.ProductNameEn),
		}
		for _, kind := range vocabulary.Kinds {
			code := ""
			if attribute := detail.Attribute(kind); attribute != nil {
				code = attribute.Code
			}
			cells = append(cells, code)
		}
		cells = append(cells, pointer.Val(detail.Notes), detail.CreatedAt.UTC().Format(time.RFC3339))

		if err := writeRow(file, i+2, cells); err != nil {
			_ = file.Close()
			return nil, "", err
		}
	}

	_ = file.SetColWidth(ExportSheet, "A", "B", 42)
	_ = file.SetColWidth(ExportSheet, "C", "D", 40)

	filename := fmt.Sprintf("products_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	return file, filename, nil
}

func writeRow(file *excelize.File, row int, cells []any) error {
	for column, value := range cells {
		cell, err := excelize.CoordinatesToCellName(column+1, row)
		if err != nil {
			return fmt.Errorf("export_cell_name_failed: %w", err)
		}
		if err := file.SetCellValue(ExportSheet, cell, value); err != nil {
			return fmt.Errorf("export_cell_write_failed: %w", err)
		}
	}
	return nil
}
