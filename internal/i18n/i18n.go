// Package i18n holds the narration catalogs.
//
// Messages are registered with golang.org/x/text/message under stable keys
// and rendered with a Printer for the configured language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.Russian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Resolve returns the supported tag closest to value, or Default.
func Resolve(value string) language.Tag {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default()
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default()
	}
	return supportedTags[index]
}

// Code returns the short language code used by the game data ("en", "ru").
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
