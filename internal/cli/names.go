package cli

import (
	"strings"
	"unicode"
)

// kebab converts an API style name into a command or flag name:
// AddRoleToDBInstance becomes add-role-to-db-instance and
// ScalingConfiguration_MinCapacity becomes scaling-configuration-min-capacity.
func kebab(name string) string {
	runes := []rune(name)
	var b strings.Builder

	for i, r := range runes {
		if r == '_' || r == '.' {
			b.WriteByte('-')
			continue
		}
		if unicode.IsUpper(r) && i > 0 && boundary(runes, i) {
			b.WriteByte('-')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func boundary(runes []rune, i int) bool {
	prev := runes[i-1]
	if prev == '_' || prev == '.' {
		return false
	}
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	// Last capital of an acronym followed by a lower case word.
	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
