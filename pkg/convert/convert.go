// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert provides forgiving string conversions for query parameters.

Malformed input falls back to a caller-supplied default instead of an error.
Do not use it where a malformed value must be reported to the client.
*/
package convert

import "strconv"

// ToIntD converts a trimmed string to an int, returning def when it is empty or malformed.
func ToIntD(str string, def int) int {
	if str == "" {
		return def
	}
	if v, err := strconv.Atoi(str); err == nil {
		return v
	}
	return def
}
