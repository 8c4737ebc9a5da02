package billing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// frPrinter groups thousands the way the customers read amounts. The French
// locale emits no-break spaces as separators; collapseSpaces normalizes them.
var frPrinter = message.NewPrinter(language.French)

// FormatAmount renders a monetary value as an integer-rounded, grouped
// FCFA string, e.g. 12345.6 -> "12 346 FCFA".
func FormatAmount(amount float64) string {
	grouped := frPrinter.Sprintf("%d", int64(math.Round(amount)))
	return collapseSpaces(grouped) + " FCFA"
}

// collapseSpaces reduces every run of whitespace (including the no-break
// variants locale formatters produce) to a single ASCII space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FormatDate renders a timestamp as zero-padded DD/MM/YYYY using the
// time's own calendar fields, with no timezone conversion.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDuration renders a whole-year service duration, e.g. "2 an(s)".
func FormatDuration(years int) string {
	return fmt.Sprintf("%d an(s)", years)
}

// orPlaceholder substitutes the given placeholder for an empty value.
func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
