package components

import (
	"strings"
	"unicode"

	"github.com/colonyops/echotable/internal/core/styles"
)

// Initials returns up to two upper-case initials for a display name.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		r := []rune(word)[0]
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// Avatar renders the initials of name in a color derived from the name.
func Avatar(name string) string {
	return styles.AvatarStyle.Foreground(styles.ColorForString(name)).Render(Initials(name))
}

// AvatarGroup renders avatars followed by a "+N" chip for the rest.
func AvatarGroup(names []string, overflow int) string {
	parts := make([]string, 0, len(names)+1)
	for _, n := range names {
		parts = append(parts, Avatar(n))
	}
	if chip := OverflowChip(overflow); chip != "" {
		parts = append(parts, chip)
	}
	return strings.Join(parts, " ")
}
