// Package currency formats amounts as locale-aware currency strings using
// the CLDR patterns shipped with github.com/bojanz/currency.
package currency

import (
	"fmt"
	"strconv"
	"strings"

	cldr "github.com/bojanz/currency"
	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// DefaultLocale is used when the host locale cannot be detected or parsed.
var DefaultLocale = language.AmericanEnglish

// DefaultCurrency is used when a locale has no territory to infer one from.
const DefaultCurrency = "USD"

// Formatter renders float amounts in the currency of a locale.
type Formatter struct {
	tag  language.Tag
	code string
	cf   *cldr.Formatter
}

// New returns a Formatter for tag. The currency is the locale's default
// currency; DefaultCurrency is used when none can be inferred.
func New(tag language.Tag) *Formatter {
	if tag == language.Und {
		tag = DefaultLocale
	}
	locale := cldr.NewLocale(tag.String())

	code := cldr.GetDefaultCode(locale)
	if code == "" {
		code = DefaultCurrency
	}

	f := cldr.NewFormatter(locale)
	// Print exactly the currency's minor-unit digits, rounding the rest.
	f.MinDigits = cldr.DefaultDigits
	f.MaxDigits = cldr.DefaultDigits

	return &Formatter{tag: tag, code: code, cf: f}
}

// Parse returns a Formatter for a BCP 47 tag ("en-US") or a POSIX locale
// name ("en_US.UTF-8").
func Parse(locale string) (*Formatter, error) {
	tag, err := parseTag(locale)
	if err != nil {
		return nil, err
	}
	return New(tag), nil
}

// System returns a Formatter for the host locale, falling back to
// DefaultLocale.
func System() *Formatter {
	name, err := golocale.GetLocale()
	if err != nil || name == "" {
		return New(DefaultLocale)
	}
	tag, err := parseTag(name)
	if err != nil {
		return New(DefaultLocale)
	}
	return New(tag)
}

func parseTag(locale string) (language.Tag, error) {
	s := strings.TrimSpace(locale)
	// POSIX names carry an encoding and modifier: en_US.UTF-8@euro
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, "_", "-")
	if s == "" || s == "C" || s == "POSIX" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return tag, nil
}

// Format returns v as a currency string following the locale's CLDR
// pattern, e.g. "$1,234.50", "2,00 €" or "CHF 2.00".
func (f *Formatter) Format(v float64) string {
	amount, err := cldr.NewAmount(strconv.FormatFloat(v, 'f', -1, 64), f.code)
	if err != nil {
		// Only reachable for NaN or infinities, which callers filter out.
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return f.cf.Format(amount)
}

// Locale returns the BCP 47 tag the formatter was built for.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Currency returns the ISO 4217 code of the formatter's currency.
func (f *Formatter) Currency() string {
	return f.code
}
