package utils

import (
	"embed"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var bundle *i18n.Bundle

// InitI18NBundle loads the embedded locale files with defaultLanguage as the
// fallback. An unparsable language falls back to english.
func InitI18NBundle(defaultLanguage string) {
	tag, err := language.Parse(defaultLanguage)
	if err != nil {
		tag = language.English
	}

	b := i18n.NewBundle(tag)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		name := path.Join("locales", e.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			panic(err)
		}
		b.MustParseMessageFileBytes(data, e.Name())
	}

	bundle = b
}

func NewLocalizer(lang ...string) *i18n.Localizer {
	if bundle == nil {
		InitI18NBundle(language.English.String())
	}
	return i18n.NewLocalizer(bundle, lang...)
}

// Translate renders a message, returning the message id when it is missing
func Translate(lang, messageID string, data map[string]interface{}) string {
	s, err := NewLocalizer(lang).Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		log.WithField("prefix", "i18n").WithError(err).WithField("message_id", messageID).Warn("fail to localize")
		return messageID
	}
	return s
}
