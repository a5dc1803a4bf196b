package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// Catalog serves localized month names.
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog loads the embedded month name tables.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "active.") || !strings.HasSuffix(name, ".json") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+name); err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
	}
	return &Catalog{bundle: bundle}, nil
}

// Languages lists the languages with month name tables.
func (c *Catalog) Languages() []language.Tag {
	return c.bundle.LanguageTags()
}

// MonthNames returns the twelve month names for tag, January first. Languages
// without a table fall back to English.
func (c *Catalog) MonthNames(tag language.Tag, short bool) []string {
	loc := i18n.NewLocalizer(c.bundle, tag.String())
	form := "long"
	if short {
		form = "short"
	}
	names := make([]string, 12)
	for i := range names {
		msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: fmt.Sprintf("month_%d_%s", i+1, form)})
		if err != nil || msg == "" {
			msg = time.Month(i + 1).String()
			if short {
				msg = msg[:3]
			}
		}
		names[i] = msg
	}
	return names
}
