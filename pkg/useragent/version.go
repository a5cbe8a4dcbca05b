package useragent

import (
	"regexp"
	"strconv"
	"strings"
)

// versionPattern matches digit groups separated by dots or underscores,
// e.g. "10_15_7" or "134.0.0.0".
var versionPattern = regexp.MustCompile(`[0-9]+(?:[._][0-9]+)*`)

// FormatVersion normalizes a raw version string into dot-separated numeric
// segments. Underscores are treated as dots, non-numeric segments are dropped
// and leading zeros are stripped. It returns an empty string when no segment
// is numeric.
//
//	FormatVersion("10_15_7")   // "10.15.7"
//	FormatVersion("13.2b1")    // "13"
//	FormatVersion("beta")      // ""
func FormatVersion(raw string) string {
	segments := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '.' || r == '_'
	})

	kept := make([]string, 0, len(segments))
	for _, segment := range segments {
		if n, ok := numericSegment(segment); ok {
			kept = append(kept, n)
		}
	}
	return strings.Join(kept, ".")
}

// FormatVersionInt formats a numeric version. Negative numbers are not
// versions and yield an empty string.
func FormatVersionInt(n int) string {
	if n < 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// ExtractVersion finds the first version-looking substring in text and
// normalizes it with FormatVersion.
func ExtractVersion(text string) string {
	match := versionPattern.FindString(text)
	if match == "" {
		return ""
	}
	return FormatVersion(match)
}

// numericSegment reports whether s is made only of ASCII digits and returns
// it without leading zeros.
func numericSegment(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", false
		}
	}
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0", true
	}
	return trimmed, true
}

// majorVersion returns the first dot-separated segment of a version.
func majorVersion(version string) string {
	major, _, _ := strings.Cut(version, ".")
	return major
}
