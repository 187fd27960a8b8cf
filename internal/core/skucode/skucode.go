// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package skucode derives and parses product codes.

A product code has twelve slots in a fixed order: season, category, type,
design number, fabric, color, style, print type, placement, supplier, factory
and size. Four identifiers are derived from the same slots:

  - Master design code: the first six human codes joined by "-".
  - SKU code: all twelve human codes joined by "-".
  - Segmented SKU: the twelve numeric codes joined by "-".
  - Compact SKU: the twelve numeric codes zero-padded to three digits and concatenated.

The package is pure: it never touches storage. Callers resolve attribute rows
and the mapping dictionary first and hand them in.
*/
package skucode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/constants"
)

// Separator joins the components of the text and segmented forms.
const Separator = "-"

// # Slots

// Slot names one position of a SKU.
type Slot string

const (
	SlotSeason    Slot = "season"
	SlotCategory  Slot = "category"
	SlotType      Slot = "type"
	SlotDesignNo  Slot = "design_no"
	SlotFabric    Slot = "fabric"
	SlotColor     Slot = "color"
	SlotStyle     Slot = "style"
	SlotPrintType Slot = "print_type"
	SlotPlacement Slot = "placement"
	SlotSupplier  Slot = "supplier"
	SlotFactory   Slot = "factory"
	SlotSize      Slot = "size"

	// SlotExtra labels components found beyond the twelfth position when decoding.
	SlotExtra Slot = "extra"
)

// Slots lists the twelve positions in SKU order.
var Slots = []Slot{
	SlotSeason, SlotCategory, SlotType, SlotDesignNo, SlotFabric, SlotColor,
	SlotStyle, SlotPrintType, SlotPlacement, SlotSupplier, SlotFactory, SlotSize,
}

// masterDesignSlots is the number of leading slots in the master design code.
const masterDesignSlots = 6

// SlotAt returns the slot for a zero-based component index.
func SlotAt(index int) Slot {
	if index >= 0 && index < len(Slots) {
		return Slots[index]
	}
	return SlotExtra
}

// # Encoding

// Component is the part of an attribute row the codec needs.
type Component struct {
	Code        string
	NumericCode int
}

// Set holds the eleven resolved attributes of a product plus its design number.
// A nil component means the reference could not be resolved.
type Set struct {
	Season    *Component
	Category  *Component
	Type      *Component
	DesignNo  string
	Fabric    *Component
	Color     *Component
	Style     *Component
	PrintType *Component
	Placement *Component
	Supplier  *Component
	Factory   *Component
	Size      *Component
}

// Codes are the four identifiers derived from a [Set].
type Codes struct {
	MasterDesignCode  string `json:"master_design_code"`
	SKUCode           string `json:"sku_code"`
	SKUCodedSegmented string `json:"sku_coded_segmented"`
	SKUCodedCompact   string `json:"sku_coded_compact"`
}

type slotComponent struct {
	slot      Slot
	component *Component
}

// attributes pairs every attribute slot with its component, in SKU order.
func (set Set) attributes() []slotComponent {
	return []slotComponent{
		{SlotSeason, set.Season}, {SlotCategory, set.Category}, {SlotType, set.Type},
		{SlotFabric, set.Fabric}, {SlotColor, set.Color}, {SlotStyle, set.Style},
		{SlotPrintType, set.PrintType}, {SlotPlacement, set.Placement},
		{SlotSupplier, set.Supplier}, {SlotFactory, set.Factory}, {SlotSize, set.Size},
	}
}

/*
Encode derives the four identifiers of a product.

Parameters:
  - set: Set with all eleven components resolved

Returns:
  - Codes: The derived identifiers
  - error: apperr.ReferentialIntegrity listing every unresolved slot
*/
func Encode(set Set) (Codes, error) {
	var missing []apperr.FieldError
	for _, pair := range set.attributes() {
		if pair.component == nil {
			missing = append(missing, apperr.FieldError{Field: string(pair.slot), Message: "Referenced master data not found"})
		}
	}
	if len(missing) > 0 {
		return Codes{}, apperr.ReferentialIntegrity("Related master data not found", missing...)
	}

	texts := []string{
		set.Season.Code, set.Category.Code, set.Type.Code, set.DesignNo,
		set.Fabric.Code, set.Color.Code, set.Style.Code, set.PrintType.Code,
		set.Placement.Code, set.Supplier.Code, set.Factory.Code, set.Size.Code,
	}
	numbers := []int{
		set.Season.NumericCode, set.Category.NumericCode, set.Type.NumericCode, DesignNumber(set.DesignNo),
		set.Fabric.NumericCode, set.Color.NumericCode, set.Style.NumericCode, set.PrintType.NumericCode,
		set.Placement.NumericCode, set.Supplier.NumericCode, set.Factory.NumericCode, set.Size.NumericCode,
	}

	segmented := make([]string, len(numbers))
	var compact strings.Builder
	for i, n := range numbers {
		segmented[i] = strconv.Itoa(n)
		compact.WriteString(Pad(n))
	}

	return Codes{
		MasterDesignCode:  strings.Join(texts[:masterDesignSlots], Separator),
		SKUCode:           strings.Join(texts, Separator),
		SKUCodedSegmented: strings.Join(segmented, Separator),
		SKUCodedCompact:   compact.String(),
	}, nil
}

// Pad renders n zero-padded to the compact width. Wider values are written in full.
func Pad(n int) string {
	return fmt.Sprintf("%0*d", constants.CompactWidth, n)
}

// DesignNumber extracts the numeric value of a design number.
//
// Leading spaces are skipped and the leading run of ASCII digits is parsed,
// so "2006" and "2006B" both yield 2006. Labels without leading digits, and
// values too large for an int, yield 0.
func DesignNumber(designNo string) int {
	trimmed := strings.TrimLeft(designNo, " \t")

	end := 0
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return 0
	}
	return n
}
