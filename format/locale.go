package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"jbasic/types"
)

// Locale formats numbers with the grouping and decimal separators of a
// language tag, e.g. 1234.5 as "1,234.5" for en or "1.234,5" for de.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocale creates a Locale formatter for a BCP 47 tag
func NewLocale(tag string) (*Locale, error) {
	t, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", tag, err)
	}
	return &Locale{tag: t, printer: message.NewPrinter(t)}, nil
}

// Tag returns the language tag in use
func (l *Locale) Tag() string {
	return l.tag.String()
}

// Format implements Formatter
func (l *Locale) Format(v types.Value, intent Intent) string {
	return formatWith(v, intent, l.number)
}

func (l *Locale) number(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return types.FormatNumber(f)
	}
	return l.printer.Sprint(number.Decimal(f, number.MaxFractionDigits(15)))
}
