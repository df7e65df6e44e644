package config

import (
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// atoi reads a number the way C atoi does: leading white space is skipped, an optional
// sign and the decimal digits after it are used, parsing stops at the first other
// character, and no digits give 0. "12abc" is 12, "010" is 10 and "0x10" is 0.
// Values that are not strings, e.g. integers from a TOML file, go through cast.
func atoi(v any) int {
	s, ok := v.(string)
	if !ok {
		return cast.ToInt(v)
	}

	s = strings.TrimLeft(s, " \t\n\v\f\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// only overflow is left at this point
		if s[0] == '-' {
			return math.MinInt
		}

		return math.MaxInt
	}

	return n
}
