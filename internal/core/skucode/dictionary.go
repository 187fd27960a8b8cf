// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package skucode

import "github.com/taibuivan/skumaster/pkg/normalize"

// Entry is one token of the decoder's mapping dictionary.
type Entry struct {
	Token         string  `json:"token"`
	NumericCode   int     `json:"numeric_code"`
	DescriptionAr string  `json:"description_ar"`
	DescriptionEn *string `json:"description_en,omitempty"`
}

// Dictionary indexes mapping entries by token and by numeric code.
//
// Numeric codes are not unique across the mapping table. When several entries
// share a number, the first one in the slice passed to [NewDictionary] wins.
type Dictionary struct {
	entries  []Entry
	byToken  map[string]int
	byNumber map[int]int
}

// NewDictionary builds the lookup indexes over entries.
func NewDictionary(entries []Entry) *Dictionary {
	dictionary := &Dictionary{
		entries:  entries,
		byToken:  make(map[string]int, len(entries)),
		byNumber: make(map[int]int, len(entries)),
	}

	for i, entry := range entries {
		token := normalize.Code(entry.Token)
		if _, exists := dictionary.byToken[token]; !exists {
			dictionary.byToken[token] = i
		}
		if _, exists := dictionary.byNumber[entry.NumericCode]; !exists {
			dictionary.byNumber[entry.NumericCode] = i
		}
	}

	return dictionary
}

// Entries returns the entries in their original order.
func (dictionary *Dictionary) Entries() []Entry {
	if dictionary == nil {
		return nil
	}
	return dictionary.entries
}

// Len returns the number of entries.
func (dictionary *Dictionary) Len() int {
	if dictionary == nil {
		return 0
	}
	return len(dictionary.entries)
}

// LookupToken finds the entry for a token. Matching ignores case and surrounding space.
func (dictionary *Dictionary) LookupToken(token string) (Entry, bool) {
	if dictionary == nil {
		return Entry{}, false
	}
	i, ok := dictionary.byToken[normalize.Code(token)]
	if !ok {
		return Entry{}, false
	}
	return dictionary.entries[i], true
}

// LookupNumber finds the first entry carrying numericCode.
func (dictionary *Dictionary) LookupNumber(numericCode int) (Entry, bool) {
	if dictionary == nil {
		return Entry{}, false
	}
	i, ok := dictionary.byNumber[numericCode]
	if !ok {
		return Entry{}, false
	}
	return dictionary.entries[i], true
}
