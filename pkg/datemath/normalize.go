package datemath

import (
	"strings"
)

var separatorReplacer = strings.NewReplacer(
	"年", "-",
	"月", "-",
	"日", "",
	"/", "-",
)

// Normalize rewrites a date token such as "2025年3月1日" or "2025/3/1"
// into "2025-03-01T00:00:00.000Z".
//
// The year is left-padded with a repeating "20" up to four digits
// ("25" -> "2025", "9" -> "2029"); month and day are zero-padded. No
// calendar validation happens: "2025-13-40" stays month 13, day 40.
// A token that does not split into exactly three dash separated parts
// is returned unchanged.
func Normalize(token string) string {
	parts := strings.Split(separatorReplacer.Replace(token), "-")
	if len(parts) != 3 {
		return token
	}

	year := padStart(parts[0], 4, "20")
	month := padStart(parts[1], 2, "0")
	day := padStart(parts[2], 2, "0")
	return year + "-" + month + "-" + day + "T00:00:00.000Z"
}

// padStart pads s on the left with repetitions of pad until it is size
// characters long, truncating the last repetition as needed.
func padStart(s string, size int, pad string) string {
	missing := size - len([]rune(s))
	if missing <= 0 || pad == "" {
		return s
	}
	fill := strings.Repeat(pad, missing/len([]rune(pad))+1)
	return string([]rune(fill)[:missing]) + s
}
