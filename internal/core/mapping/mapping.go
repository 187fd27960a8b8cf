// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package mapping manages the token table consulted by the SKU decoder.

A mapping token pairs a short token ("S26", "BLK", "2006") with a numeric code
and bilingual descriptions. The table is independent from the vocabularies: its
numeric codes are assigned by editors, are not unique, and have no relation to
the numeric codes the vocabularies allocate for products.
*/
package mapping

import (
	"time"

	"github.com/taibuivan/skumaster/internal/core/skucode"
)

// Token is one row of the mapping table.
type Token struct {
	ID            string    `json:"id"`
	Token         string    `json:"token"`
	NumericCode   int       `json:"numeric_code"`
	DescriptionAr string    `json:"description_ar"`
	DescriptionEn *string   `json:"description_en,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Entry converts the row into a decoder dictionary entry.
func (token *Token) Entry() skucode.Entry {
	return skucode.Entry{
		Token:         token.Token,
		NumericCode:   token.NumericCode,
		DescriptionAr: token.DescriptionAr,
		DescriptionEn: token.DescriptionEn,
	}
}

// Input carries the editable fields of a mapping token.
type Input struct {
	Token         string  `json:"token"`
	NumericCode   int     `json:"numeric_code"`
	DescriptionAr string  `json:"description_ar"`
	DescriptionEn *string `json:"description_en"`
}

const (
	FieldToken         = "token"
	FieldNumericCode   = "numeric_code"
	FieldDescriptionAr = "description_ar"
	FieldDescriptionEn = "description_en"

	MaxTokenLength       = 50
	MaxDescriptionLength = 200
)
