// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize canonicalizes the short codes typed by catalogue editors.
//
// # Usage
//
// Codes such as "s26" or full-width "ＳＷＴ" pasted from spreadsheets must
// land in the database as "S26" and "SWT", otherwise the same value could
// exist twice under different spellings and the SKU text would not round-trip.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Code converts a user-supplied vocabulary code or token into its canonical form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKC (folds full-width and compatibility characters).
// 2. Removes control characters.
// 3. Trims surrounding whitespace.
// 4. Converts to upper case.
func Code(s string) string {
	t := transform.Chain(norm.NFKC, transform.RemoveFunc(unicode.IsControl))
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	return strings.ToUpper(strings.TrimSpace(result))
}

// Text trims and NFC-normalizes free text such as names and descriptions.
func Text(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// OptionalText applies [Text] to an optional value; blank values become nil.
func OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := Text(*s)
	if v == "" {
		return nil
	}
	return &v
}
