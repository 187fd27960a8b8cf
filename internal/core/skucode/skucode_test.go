// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package skucode_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/skumaster/internal/core/skucode"
	"github.com/taibuivan/skumaster/internal/platform/apperr"
)

func component(code string, numericCode int) *skucode.Component {
	return &skucode.Component{Code: code, NumericCode: numericCode}
}

// sampleSet is the hoodie used throughout the catalogue examples.
func sampleSet() skucode.Set {
	return skucode.Set{
		Season:    component("S26", 1),
		Category:  component("TP", 4),
		Type:      component("HO", 8),
		DesignNo:  "2006",
		Fabric:    component("MLT", 16),
		Color:     component("BLK", 21),
		Style:     component("ARB", 27),
		PrintType: component("NP", 31),
		Placement: component("MDF", 35),
		Supplier:  component("S1", 41),
		Factory:   component("F1", 44),
		Size:      component("S", 47),
	}
}

/*
TestEncode_Example checks the four identifiers of the reference product.
*/
func TestEncode_Example(t *testing.T) {
	codes, err := skucode.Encode(sampleSet())
	require.NoError(t, err)

	assert.Equal(t, "S26-TP-HO-2006-MLT-BLK", codes.MasterDesignCode)
	assert.Equal(t, "S26-TP-HO-2006-MLT-BLK-ARB-NP-MDF-S1-F1-S", codes.SKUCode)
	assert.Equal(t, "1-4-8-2006-16-21-27-31-35-41-44-47", codes.SKUCodedSegmented)
	assert.Equal(t, "0010040082006016021027031035041044047", codes.SKUCodedCompact)
}

/*
TestEncode_MissingReferences checks that any unresolved slot aborts the whole encoding.
*/
func TestEncode_MissingReferences(t *testing.T) {
	set := sampleSet()
	set.Color = nil
	set.Size = nil

	codes, err := skucode.Encode(set)
	require.Error(t, err)
	assert.Empty(t, codes.SKUCode)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeReferentialIntegrity, ae.Code)
	require.Len(t, ae.Details, 2)
	assert.Equal(t, "color", ae.Details[0].Field)
	assert.Equal(t, "size", ae.Details[1].Field)
}

/*
TestEncode_DesignNumberFallback checks the lossy numeric value of design numbers.
*/
func TestEncode_DesignNumberFallback(t *testing.T) {
	tests := []struct {
		designNo  string
		segmented string
		compact   string
	}{
		{"7", "1-4-8-7-16-21-27-31-35-41-44-47", "001004008007016021027031035041044047"},
		{"ABC", "1-4-8-0-16-21-27-31-35-41-44-47", "001004008000016021027031035041044047"},
		{"12B", "1-4-8-12-16-21-27-31-35-41-44-47", "001004008012016021027031035041044047"},
	}

	for _, tt := range tests {
		t.Run(tt.designNo, func(t *testing.T) {
			set := sampleSet()
			set.DesignNo = tt.designNo

			codes, err := skucode.Encode(set)
			require.NoError(t, err)
			assert.Equal(t, tt.segmented, codes.SKUCodedSegmented)
			assert.Equal(t, tt.compact, codes.SKUCodedCompact)
			assert.Contains(t, codes.SKUCode, "-"+tt.designNo+"-")
		})
	}
}

/*
TestDesignNumber covers the parsing rules for design numbers.
*/
func TestDesignNumber(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2006", 2006},
		{"0042", 42},
		{"  15", 15},
		{"15A", 15},
		{"A15", 0},
		{"", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, skucode.DesignNumber(tt.input))
		})
	}
}

/*
TestPad checks the fixed compact width.
*/
func TestPad(t *testing.T) {
	assert.Equal(t, "000", skucode.Pad(0))
	assert.Equal(t, "007", skucode.Pad(7))
	assert.Equal(t, "999", skucode.Pad(999))
	assert.Equal(t, "1000", skucode.Pad(1000))
}

/*
TestSlotAt checks slot labels including overflow positions.
*/
func TestSlotAt(t *testing.T) {
	assert.Equal(t, skucode.SlotSeason, skucode.SlotAt(0))
	assert.Equal(t, skucode.SlotDesignNo, skucode.SlotAt(3))
	assert.Equal(t, skucode.SlotSize, skucode.SlotAt(11))
	assert.Equal(t, skucode.SlotExtra, skucode.SlotAt(12))
	assert.Equal(t, skucode.SlotExtra, skucode.SlotAt(-1))
}

// randomSet builds an attribute set with codes below the compact width limit.
func randomSet(rng *rand.Rand) (skucode.Set, []skucode.Entry) {
	var entries []skucode.Entry
	next := func(prefix string) *skucode.Component {
		c := component(fmt.Sprintf("%s%d", prefix, rng.Intn(90)+10), rng.Intn(999)+1)
		entries = append(entries, skucode.Entry{Token: c.Code, NumericCode: c.NumericCode, DescriptionAr: "وصف " + c.Code})
		return c
	}

	set := skucode.Set{
		Season:    next("SE"),
		Category:  next("CA"),
		Type:      next("TY"),
		DesignNo:  fmt.Sprintf("%d", rng.Intn(1000)),
		Fabric:    next("FA"),
		Color:     next("CO"),
		Style:     next("ST"),
		PrintType: next("PR"),
		Placement: next("PL"),
		Supplier:  next("SU"),
		Factory:   next("FC"),
		Size:      next("SZ"),
	}
	return set, entries
}

/*
TestRoundTrip_Text checks that decoding the SKU code yields the original codes.
*/
func TestRoundTrip_Text(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		set, entries := randomSet(rng)
		codes, err := skucode.Encode(set)
		require.NoError(t, err)

		result, err := skucode.Decode(codes.SKUCode, skucode.ModeText, skucode.NewDictionary(entries))
		require.NoError(t, err)
		require.Len(t, result.Segments, 12)

		assert.Equal(t, codes.SKUCode, result.Decoded)
		assert.Equal(t, set.Season.Code, result.Segments[0].Token)
		assert.Equal(t, set.DesignNo, result.Segments[3].Token)
		assert.Equal(t, set.Size.Code, result.Segments[11].Token)
	}
}

/*
TestRoundTrip_Compact checks that fixed-width compact SKUs recover the segmented sequence.
*/
func TestRoundTrip_Compact(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		set, _ := randomSet(rng)
		codes, err := skucode.Encode(set)
		require.NoError(t, err)
		require.Len(t, codes.SKUCodedCompact, 36)

		result, err := skucode.Decode(codes.SKUCodedCompact, skucode.ModeCompact, skucode.NewDictionary(nil))
		require.NoError(t, err)

		numbers := make([]string, len(result.Segments))
		for j, segment := range result.Segments {
			require.NotNil(t, segment.NumericCode)
			numbers[j] = fmt.Sprintf("%d", *segment.NumericCode)
		}
		assert.Equal(t, codes.SKUCodedSegmented, strings.Join(numbers, "-"))
	}
}
