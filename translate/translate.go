// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user-visible messages for the host locale.
package translate

import (
	"sync"

	"github.com/jeandeaual/go-locale"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the language used when the host locale cannot be determined.
const Fallback = "en-US"

var (
	printerOnce sync.Once
	printer     *message.Printer
	tag         language.Tag
)

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		logrus.WithError(err).Debug("tricolore: locale")
	}

	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Language returns the language tag selected for message output.
func Language() language.Tag {
	printerOnce.Do(load)
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(load)
	return printer.Sprintf(key, args...)
}
