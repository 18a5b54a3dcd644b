package internal

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// NewLocalizer builds a localizer for the given locale from TOML message files.
// Message files follow go-i18n naming, e.g. "titles.fr.toml". An empty or
// unparsable locale falls back to English.
func NewLocalizer(locale string, messageFiles ...string) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range messageFiles {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", file, err)
		}
	}

	tag := language.English
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			GetInternalLogger().Warn("Invalid locale; using English", "locale", locale, "error", err)
		} else {
			tag = parsed
		}
	}

	return i18n.NewLocalizer(bundle, tag.String(), language.English.String()), nil
}

// NewLocalizerFromMessages builds a localizer from in-memory messages for a
// single locale. Used when titles are configured inline instead of via files.
func NewLocalizerFromMessages(tag language.Tag, messages ...*i18n.Message) (*i18n.Localizer, error) {
	bundle := i18n.NewBundle(tag)
	if err := bundle.AddMessages(tag, messages...); err != nil {
		return nil, fmt.Errorf("add messages: %w", err)
	}
	return i18n.NewLocalizer(bundle, tag.String()), nil
}
