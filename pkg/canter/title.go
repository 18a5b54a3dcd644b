package canter

import (
	"github.com/BrandonKowalski/canter/pkg/canter/browser"
	"github.com/BrandonKowalski/canter/pkg/canter/internal"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// TitleManager applies rendered titles to the document.
type TitleManager struct {
	Document browser.Document

	// Localizer and MessageID optionally decorate every title, e.g. with a
	// per-locale site suffix. The message receives the raw title as {{.Title}}.
	Localizer *i18n.Localizer
	MessageID string
}

// SetTitle updates the document title. An empty title leaves the current one
// in place. The content-text slot is preferred; the rendered-text slot is used
// when only it is populated.
func (m *TitleManager) SetTitle(title string) {
	if title == "" || m.Document == nil {
		return
	}
	el, ok := m.Document.Title()
	if !ok {
		return
	}

	title = m.format(title)

	switch {
	case el.TextContent() != "":
		el.SetTextContent(title)
	case el.InnerText() != "":
		el.SetInnerText(title)
	default:
		el.SetTextContent(title)
	}
}

func (m *TitleManager) format(title string) string {
	if m.Localizer == nil || m.MessageID == "" {
		return title
	}
	formatted, err := m.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    m.MessageID,
		TemplateData: map[string]any{"Title": title},
	})
	if err != nil || formatted == "" {
		internal.GetInternalLogger().Debug("Title message not localized; using raw title", "message_id", m.MessageID, "error", err)
		return title
	}
	return formatted
}
