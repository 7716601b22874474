//nolint:revive,nolintlint // I like this package name, leave me alone
package utils

import (
	"strings"

	"github.com/yama6a/shared-rate/internal/pkg/model"
)

func NormalizeSpaces(str string) string {
	str = strings.ReplaceAll(str, "\u00A0", " ") // no-break space
	str = strings.ReplaceAll(str, "\u2009", " ") // thin space
	str = strings.ReplaceAll(str, "\u202F", " ") // narrow no-break space
	str = strings.ReplaceAll(str, "\u200B", " ") // zero-width space
	str = strings.ReplaceAll(str, "\uFEFF", " ") // zero-width non-breaking space
	str = strings.Join(strings.Fields(str), " ") // tabs, newlines and runs of spaces

	return str
}

// ShortName is the last word of the owner's name, "Bill Gates" becomes "Gates".
func ShortName(owner model.Owner) string {
	fields := strings.Fields(NormalizeSpaces(string(owner)))
	if len(fields) == 0 {
		return ""
	}

	return fields[len(fields)-1]
}
