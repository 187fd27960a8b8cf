/*
Package vocabulary manages the eleven controlled vocabularies that make up a product code.

Every vocabulary (season, category, type, fabric, color, style, print type,
placement, supplier, factory, size) stores rows of the same shape: a short
human code, bilingual names and a numeric code.

# Numeric Codes

  - Allocation: The numeric code is assigned by the store when a row is created,
    one higher than anything the vocabulary has ever used.
  - Stability: Updates never touch it, and a code released by a delete is never reused.
  - Capacity: A vocabulary can allocate at most [constants.MaxNumericCode] codes.

Products embed both the human code and the numeric code of each attribute in
their SKUs, so these two rules are what keep previously issued SKUs decodable.
*/
package vocabulary

import (
	"time"

	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/constants"
)

// # Kinds

// Kind identifies one of the eleven vocabularies.
type Kind string

const (
	KindSeason    Kind = "season"
	KindCategory  Kind = "category"
	KindType      Kind = "type"
	KindFabric    Kind = "fabric"
	KindColor     Kind = "color"
	KindStyle     Kind = "style"
	KindPrintType Kind = "print_type"
	KindPlacement Kind = "placement"
	KindSupplier  Kind = "supplier"
	KindFactory   Kind = "factory"
	KindSize      Kind = "size"
)

// Kinds lists every vocabulary in SKU order.
var Kinds = []Kind{
	KindSeason, KindCategory, KindType, KindFabric, KindColor, KindStyle,
	KindPrintType, KindPlacement, KindSupplier, KindFactory, KindSize,
}

type kindInfo struct {
	table    string
	path     string
	resource string
}

var kindInfos = map[Kind]kindInfo{
	KindSeason:    {table: "season", path: "seasons", resource: "Season"},
	KindCategory:  {table: "category", path: "categories", resource: "Category"},
	KindType:      {table: "type", path: "types", resource: "Type"},
	KindFabric:    {table: "fabric", path: "fabrics", resource: "Fabric"},
	KindColor:     {table: "color", path: "colors", resource: "Color"},
	KindStyle:     {table: "style", path: "styles", resource: "Style"},
	KindPrintType: {table: "printtype", path: "print-types", resource: "Print type"},
	KindPlacement: {table: "placement", path: "placements", resource: "Placement"},
	KindSupplier:  {table: "supplier", path: "suppliers", resource: "Supplier"},
	KindFactory:   {table: "factory", path: "factories", resource: "Factory"},
	KindSize:      {table: "size", path: "sizes", resource: "Size"},
}

// Valid reports whether k names a known vocabulary.
func (k Kind) Valid() bool {
	_, ok := kindInfos[k]
	return ok
}

// Table returns the unqualified table name in the catalog schema.
func (k Kind) Table() string { return kindInfos[k].table }

// Path returns the REST collection segment, e.g. "print-types".
func (k Kind) Path() string { return kindInfos[k].path }

// Resource returns the display name used in error messages.
func (k Kind) Resource() string { return kindInfos[k].resource }

// String implements [fmt.Stringer].
func (k Kind) String() string { return string(k) }

// ParseKind resolves a kind from either its name ("print_type") or its REST path ("print-types").
func ParseKind(value string) (Kind, bool) {
	if k := Kind(value); k.Valid() {
		return k, true
	}
	for k, info := range kindInfos {
		if info.path == value {
			return k, true
		}
	}
	return "", false
}

// # Attribute Domain

// Attribute is a single row of a vocabulary.
type Attribute struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Code        string    `json:"code"`
	NameAr      string    `json:"name_ar"`
	NameEn      *string   `json:"name_en"`
	NumericCode int       `json:"numeric_code"`
	HexValue    *string   `json:"hex_value,omitempty"`   // color only
	CategoryID  *string   `json:"category_id,omitempty"` // type only, informational
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Input carries the editable fields of an [Attribute].
// It has no numeric code field; the store always allocates it.
type Input struct {
	Code       string  `json:"code"`
	NameAr     string  `json:"name_ar"`
	NameEn     *string `json:"name_en"`
	HexValue   *string `json:"hex_value"`
	CategoryID *string `json:"category_id"`
}

// # Numeric Code Allocation

/*
NextNumericCode computes the code for a new row of kind.

Parameters:
  - kind: Kind being allocated
  - lastValue: Highest code ever handed out for the kind (the high-water mark)
  - currentMax: Highest code currently stored in the kind's table

Returns:
  - int: The next code, strictly greater than both inputs
  - error: apperr.CapacityExceeded when the next code would exceed [constants.MaxNumericCode]
*/
func NextNumericCode(kind Kind, lastValue, currentMax int) (int, error) {
	next := max(lastValue, currentMax) + 1
	if next > constants.MaxNumericCode {
		return 0, apperr.CapacityExceeded(kind.Resource(), constants.MaxNumericCode)
	}
	return next, nil
}

// # Field Identifiers

const (
	FieldCode       = "code"
	FieldNameAr     = "name_ar"
	FieldNameEn     = "name_en"
	FieldHexValue   = "hex_value"
	FieldCategoryID = "category_id"
)

// # Limits

const (
	MaxCodeLength = 10
	MaxNameLength = 200
)
