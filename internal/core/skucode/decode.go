// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package skucode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/taibuivan/skumaster/internal/platform/apperr"
	"github.com/taibuivan/skumaster/internal/platform/constants"
)

// Unknown is the description reported for components missing from the dictionary.
const Unknown = "unknown"

var (
	digitRun = regexp.MustCompile(`\d+`)
	numeral  = regexp.MustCompile(`^\d+$`)
)

// # Modes

// Mode selects how a raw SKU string is split into components.
type Mode string

const (
	// ModeText splits on "-" and looks each part up by token.
	ModeText Mode = "text"
	// ModeSegmented splits on "-" and looks each part up by numeric code.
	ModeSegmented Mode = "segmented"
	// ModeCompact splits on digit runs and looks each run up by numeric code.
	ModeCompact Mode = "compact"
	// ModeAuto picks one of the other modes from the shape of the input.
	ModeAuto Mode = "auto"
)

// ParseMode validates a mode name. An empty name means [ModeAuto].
func ParseMode(value string) (Mode, bool) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ModeText, ModeSegmented, ModeCompact, ModeAuto:
		return mode, true
	case "":
		return ModeAuto, true
	default:
		return "", false
	}
}

// Detect resolves [ModeAuto] for raw: any letter means text, a hyphen means
// segmented, anything else is treated as compact.
func Detect(raw string) Mode {
	if strings.IndexFunc(raw, unicode.IsLetter) >= 0 {
		return ModeText
	}
	if strings.Contains(raw, Separator) {
		return ModeSegmented
	}
	return ModeCompact
}

// # Results

// Segment is the decoded form of one SKU component.
type Segment struct {
	Position      int     `json:"position"`
	Slot          Slot    `json:"slot"`
	Input         string  `json:"input"`
	Token         string  `json:"token"`
	NumericCode   *int    `json:"numeric_code"`
	DescriptionAr string  `json:"description_ar"`
	DescriptionEn *string `json:"description_en"`
	Resolved      bool    `json:"resolved"`
}

// Result is the outcome of [Decode].
type Result struct {
	Mode     Mode      `json:"mode"`
	Input    string    `json:"input"`
	Segments []Segment `json:"segments"`
	// Decoded re-joins the resolved tokens with "-"; unresolved parts are kept verbatim.
	Decoded string `json:"decoded"`
}

// Unresolved counts the segments that were not found in the dictionary.
func (result *Result) Unresolved() int {
	count := 0
	for _, segment := range result.Segments {
		if !segment.Resolved {
			count++
		}
	}
	return count
}

// # Decoding

/*
Decode splits raw into components and resolves each against dictionary.

Description: Unknown components never fail the call; they are reported with
the description [Unknown]. Components beyond the twelfth are decoded too and
labelled [SlotExtra]. Blank components (e.g. "A--C") still count and decode as
unknown.

Parameters:
  - raw: SKU in text, segmented or compact form
  - mode: Mode; [ModeAuto] is resolved with [Detect]
  - dictionary: *Dictionary of mapping tokens

Returns:
  - *Result: Per-slot decoding
  - error: apperr.MalformedSKU when fewer than twelve components are found
*/
func Decode(raw string, mode Mode, dictionary *Dictionary) (*Result, error) {
	if mode == ModeAuto || mode == "" {
		mode = Detect(raw)
	}

	var parts []string
	switch mode {
	case ModeText, ModeSegmented:
		parts = splitSeparated(raw)
	case ModeCompact:
		parts = splitCompact(raw)
	default:
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{Field: "mode", Message: "Must be one of: text, segmented, compact, auto"})
	}

	if len(parts) < constants.SKUComponents {
		return nil, apperr.MalformedSKU(fmt.Sprintf("Invalid SKU format: expected %d components, found %d", constants.SKUComponents, len(parts)))
	}

	result := &Result{Mode: mode, Input: raw, Segments: make([]Segment, len(parts))}
	tokens := make([]string, len(parts))

	for i, part := range parts {
		segment := Segment{Position: i + 1, Slot: SlotAt(i), Input: part}

		if mode == ModeText {
			resolveToken(&segment, part, dictionary)
		} else {
			resolveNumeral(&segment, part, dictionary)
		}

		result.Segments[i] = segment
		tokens[i] = segment.Token
	}

	result.Decoded = strings.Join(tokens, Separator)
	return result, nil
}

// splitSeparated splits on the separator and trims every part. Blank parts are kept.
func splitSeparated(raw string) []string {
	parts := strings.Split(raw, Separator)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts
}

// splitCompact extracts digit runs. A lone run of exactly twelve padded
// components is split at fixed width instead, which recovers every SKU whose
// values all fit in the padding. Longer lone runs (a design number of four or
// more digits) are ambiguous and stay as a single component.
func splitCompact(raw string) []string {
	runs := digitRun.FindAllString(raw, -1)

	fixedLength := constants.SKUComponents * constants.CompactWidth
	if len(runs) != 1 || len(runs[0]) != fixedLength {
		return runs
	}

	parts := make([]string, constants.SKUComponents)
	for i := range parts {
		parts[i] = runs[0][i*constants.CompactWidth : (i+1)*constants.CompactWidth]
	}
	return parts
}

func resolveToken(segment *Segment, part string, dictionary *Dictionary) {
	entry, ok := dictionary.LookupToken(part)
	if !ok {
		markUnknown(segment, part)
		return
	}
	fill(segment, entry)
}

func resolveNumeral(segment *Segment, part string, dictionary *Dictionary) {
	if !numeral.MatchString(part) {
		resolveToken(segment, part, dictionary)
		return
	}

	n, err := strconv.Atoi(part)
	if err != nil {
		// Out of int range
		resolveToken(segment, part, dictionary)
		return
	}

	entry, ok := dictionary.LookupNumber(n)
	if !ok {
		markUnknown(segment, strconv.Itoa(n))
		segment.NumericCode = &n
		return
	}
	fill(segment, entry)
}

func fill(segment *Segment, entry Entry) {
	numericCode := entry.NumericCode
	segment.Token = entry.Token
	segment.NumericCode = &numericCode
	segment.DescriptionAr = entry.DescriptionAr
	segment.DescriptionEn = entry.DescriptionEn
	segment.Resolved = true
}

func markUnknown(segment *Segment, token string) {
	segment.Token = token
	segment.DescriptionAr = Unknown
	segment.Resolved = false
}
