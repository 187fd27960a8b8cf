// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product manages catalogue products and their derived SKU codes.

A product references one row of each of the eleven vocabularies plus a free
text design number. Its four identifiers (master design code, SKU code,
segmented and compact SKU) are never edited directly: they are recomputed from
the current vocabulary codes every time the product is created or updated.

# References

Vocabulary rows can be deleted while products still point at them. Such
references are kept as they are; reads return the product without the missing
attribute and the next update fails until the reference is replaced.
*/
package product

import (
	"time"

	"github.com/taibuivan/skumaster/internal/core/skucode"
	"github.com/taibuivan/skumaster/internal/core/vocabulary"
)

// # Domain Models

// Product is a stored catalogue product.
type Product struct {
	ID                string    `json:"id"`
	SeasonID          string    `json:"season_id"`
	CategoryID        string    `json:"category_id"`
	TypeID            string    `json:"type_id"`
	DesignNo          string    `json:"design_no"`
	FabricID          string    `json:"fabric_id"`
	ColorID           string    `json:"color_id"`
	StyleID           string    `json:"style_id"`
	PrintTypeID       string    `json:"print_type_id"`
	PlacementID       string    `json:"placement_id"`
	SupplierID        string    `json:"supplier_id"`
	FactoryID         string    `json:"factory_id"`
	SizeID            string    `json:"size_id"`
	ProductNameAr     string    `json:"product_name_ar"`
	ProductNameEn     *string   `json:"product_name_en,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	MasterDesignCode  string    `json:"master_design_code"`
	SKUCode           string    `json:"sku_code"`
	SKUCodedSegmented string    `json:"sku_coded_segmented"`
	SKUCodedCompact   string    `json:"sku_coded_compact"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// references exposes the eleven id fields keyed by vocabulary.
func (product *Product) references() map[vocabulary.Kind]*string {
	return map[vocabulary.Kind]*string{
		vocabulary.KindSeason:    &product.SeasonID,
		vocabulary.KindCategory:  &product.CategoryID,
		vocabulary.KindType:      &product.TypeID,
		vocabulary.KindFabric:    &product.FabricID,
		vocabulary.KindColor:     &product.ColorID,
		vocabulary.KindStyle:     &product.StyleID,
		vocabulary.KindPrintType: &product.PrintTypeID,
		vocabulary.KindPlacement: &product.PlacementID,
		vocabulary.KindSupplier:  &product.SupplierID,
		vocabulary.KindFactory:   &product.FactoryID,
		vocabulary.KindSize:      &product.SizeID,
	}
}

// ReferenceID returns the id the product holds for kind.
func (product *Product) ReferenceID(kind vocabulary.Kind) string {
	if field, ok := product.references()[kind]; ok {
		return *field
	}
	return ""
}

// ReferenceIDs returns the eleven referenced ids keyed by vocabulary.
func (product *Product) ReferenceIDs() map[vocabulary.Kind]string {
	ids := make(map[vocabulary.Kind]string, len(vocabulary.Kinds))
	for kind, field := range product.references() {
		ids[kind] = *field
	}
	return ids
}

// applyCodes stores freshly derived identifiers.
func (product *Product) applyCodes(codes skucode.Codes) {
	product.MasterDesignCode = codes.MasterDesignCode
	product.SKUCode = codes.SKUCode
	product.SKUCodedSegmented = codes.SKUCodedSegmented
	product.SKUCodedCompact = codes.SKUCodedCompact
}

// Details is a product together with the vocabulary rows it references.
// A nil attribute means the referenced row no longer exists.
type Details struct {
	*Product
	Season    *vocabulary.Attribute `json:"season,omitempty"`
	Category  *vocabulary.Attribute `json:"category,omitempty"`
	Type      *vocabulary.Attribute `json:"type,omitempty"`
	Fabric    *vocabulary.Attribute `json:"fabric,omitempty"`
	Color     *vocabulary.Attribute `json:"color,omitempty"`
	Style     *vocabulary.Attribute `json:"style,omitempty"`
	PrintType *vocabulary.Attribute `json:"print_type,omitempty"`
	Placement *vocabulary.Attribute `json:"placement,omitempty"`
	Supplier  *vocabulary.Attribute `json:"supplier,omitempty"`
	Factory   *vocabulary.Attribute `json:"factory,omitempty"`
	Size      *vocabulary.Attribute `json:"size,omitempty"`
}

// Attribute returns the resolved row for kind, or nil.
func (details *Details) Attribute(kind vocabulary.Kind) *vocabulary.Attribute {
	if slot, ok := details.slots()[kind]; ok {
		return *slot
	}
	return nil
}

func (details *Details) attach(kind vocabulary.Kind, attribute *vocabulary.Attribute) {
	if slot, ok := details.slots()[kind]; ok {
		*slot = attribute
	}
}

func (details *Details) slots() map[vocabulary.Kind]**vocabulary.Attribute {
	return map[vocabulary.Kind]**vocabulary.Attribute{
		vocabulary.KindSeason:    &details.Season,
		vocabulary.KindCategory:  &details.Category,
		vocabulary.KindType:      &details.Type,
		vocabulary.KindFabric:    &details.Fabric,
		vocabulary.KindColor:     &details.Color,
		vocabulary.KindStyle:     &details.Style,
		vocabulary.KindPrintType: &details.PrintType,
		vocabulary.KindPlacement: &details.Placement,
		vocabulary.KindSupplier:  &details.Supplier,
		vocabulary.KindFactory:   &details.Factory,
		vocabulary.KindSize:      &details.Size,
	}
}

// # Input

// Input carries the editable fields of a product. Derived codes are not accepted.
type Input struct {
	SeasonID      string  `json:"season_id"`
	CategoryID    string  `json:"category_id"`
	TypeID        string  `json:"type_id"`
	DesignNo      string  `json:"design_no"`
	FabricID      string  `json:"fabric_id"`
	ColorID       string  `json:"color_id"`
	StyleID       string  `json:"style_id"`
	PrintTypeID   string  `json:"print_type_id"`
	PlacementID   string  `json:"placement_id"`
	SupplierID    string  `json:"supplier_id"`
	FactoryID     string  `json:"factory_id"`
	SizeID        string  `json:"size_id"`
	ProductNameAr string  `json:"product_name_ar"`
	ProductNameEn *string `json:"product_name_en"`
	Notes         *string `json:"notes"`
}

// product copies the input into a new [Product] with the given id.
func (input Input) product(id string) *Product {
	return &Product{
		ID:            id,
		SeasonID:      input.SeasonID,
		CategoryID:    input.CategoryID,
		TypeID:        input.TypeID,
		DesignNo:      input.DesignNo,
		FabricID:      input.FabricID,
		ColorID:       input.ColorID,
		StyleID:       input.StyleID,
		PrintTypeID:   input.PrintTypeID,
		PlacementID:   input.PlacementID,
		SupplierID:    input.SupplierID,
		FactoryID:     input.FactoryID,
		SizeID:        input.SizeID,
		ProductNameAr: input.ProductNameAr,
		ProductNameEn: input.ProductNameEn,
		Notes:         input.Notes,
	}
}

// # Search & Filtering

// Filter holds the parameters of a product list query.
type Filter struct {
	// Query matches SKU codes, design numbers and names, case-insensitively.
	Query string `json:"q,omitempty"`
}

// # Field Identifiers

const (
	FieldDesignNo      = "design_no"
	FieldProductNameAr = "product_name_ar"
	FieldProductNameEn = "product_name_en"
	FieldNotes         = "notes"

	MaxDesignNoLength = 20
	MaxNameLength     = 200
	MaxNotesLength    = 2000
)

// ReferenceField returns the input field name holding the id for kind, e.g. "print_type_id".
func ReferenceField(kind vocabulary.Kind) string {
	return string(kind) + "_id"
}
