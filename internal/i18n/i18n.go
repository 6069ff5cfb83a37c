// Package i18n renders user-facing text in the supported languages through a
// golang.org/x/text message catalog.
package i18n

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	Uzbek   = "uz"
	Russian = "ru"
)

// Languages lists the supported language codes in menu order.
var Languages = []string{Uzbek, Russian}

var tags = map[string]language.Tag{
	Uzbek:   language.Uzbek,
	Russian: language.Russian,
}

func Supported(lang string) bool {
	_, ok := tags[lang]
	return ok
}

type Translator struct {
	printers map[string]*message.Printer
	fallback string
}

// New builds a translator over the built-in catalog. Unsupported languages
// fall back to fallback.
func New(fallback string) (*Translator, error) {
	if !Supported(fallback) {
		fallback = Uzbek
	}

	builder := catalog.NewBuilder(catalog.Fallback(tags[fallback]))
	for key, texts := range messages {
		for lang, text := range texts {
			if err := builder.SetString(tags[lang], string(key), text); err != nil {
				return nil, err
			}
		}
	}

	t := &Translator{printers: make(map[string]*message.Printer), fallback: fallback}
	for lang, tag := range tags {
		t.printers[lang] = message.NewPrinter(tag, message.Catalog(builder))
	}
	return t, nil
}

func (t *Translator) printer(lang string) *message.Printer {
	if p, ok := t.printers[lang]; ok {
		return p
	}
	return t.printers[t.fallback]
}

// T renders key in lang with fmt-style args. Arguments print exactly as fmt
// would print them: ids and coordinates are never digit-grouped.
func (t *Translator) T(lang string, key Key, args ...any) string {
	plain := make([]any, len(args))
	for i, a := range args {
		plain[i] = verbatim{a}
	}
	return t.printer(lang).Sprintf(string(key), plain...)
}

// verbatim bypasses the printer's locale-aware number formatting.
type verbatim struct{ v any }

func (a verbatim) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, fmt.FormatString(f, verb), a.v)
}

// Money formats an amount with two decimals and the currency suffix.
func (t *Translator) Money(lang string, amount decimal.Decimal) string {
	return t.T(lang, MoneyAmount, amount.StringFixed(2))
}

// LanguageName is the language's own name for itself.
func LanguageName(lang string) string {
	switch lang {
	case Russian:
		return "Русский"
	case Uzbek:
		return "O‘zbekcha"
	}
	return lang
}

// Pick returns uz when lang is Uzbek, ru otherwise. Used for bilingual
// entity fields stored side by side.
func Pick(lang, uz, ru string) string {
	if lang == Russian && ru != "" {
		return ru
	}
	return uz
}
