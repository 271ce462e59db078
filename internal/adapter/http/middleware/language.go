package middleware

import (
	"agenda/pkg/translator"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const langKey = "lang"

var languageMatcher = language.NewMatcher([]language.Tag{
	language.English,
	language.French,
})

// LanguageMiddleware resolves Accept-Language to one of the bundled
// languages and stores it on the context. English is the fallback.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, resolveLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func resolveLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}

	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return translator.LanguageEn
	}
	if index == 1 {
		return translator.LanguageFr
	}
	return translator.LanguageEn
}
