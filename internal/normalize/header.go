package normalize

import (
	"strings"

	"golang.org/x/text/cases"
)

// Header normalizes a spreadsheet header for comparison: surrounding and
// repeated inner whitespace is collapsed and case is folded.
func Header(h string) string {
	return cases.Fold().String(strings.Join(strings.Fields(h), " "))
}
