package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string // List of supported languages
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}

	zap.L().Debug("translations loaded",
		zap.String("folder", cfg.TranslationFolder),
		zap.Strings("supported_languages", cfg.SupportedLanguages),
	)
}

// Translate resolves msgKey for lang, falling back to English and then to the
// key itself.
func Translate(msgKey string, lang string) string {
	if Translator == nil {
		return msgKey
	}

	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgKey})
	if err != nil {
		zap.L().Debug("translation fallback", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
	}
	// A key missing for lang still yields the English text alongside a
	// MessageNotFoundErr.
	if msg == "" {
		return msgKey
	}
	return msg
}
