package editor

import (
	"embed"
	"strings"

	"github.com/leonelquinteros/gotext"
)

//go:embed locale/*.po
var locales embed.FS

// Catalog translates user-facing messages. Source strings are English;
// other languages come from the embedded gettext catalogs.
type Catalog struct {
	lang string
	po   *gotext.Po
}

// NewCatalog loads the catalog for lang ("pt_BR", "pt-BR.UTF-8", ...).
// Unknown languages fall back to English.
func NewCatalog(lang string) *Catalog {
	lang = normalizeLang(lang)
	po := gotext.NewPo()

	if data, err := locales.ReadFile("locale/" + lang + ".po"); err == nil {
		po.Parse(data)
	} else {
		lang = "en"
	}
	return &Catalog{lang: lang, po: po}
}

// Language returns the loaded language.
func (c *Catalog) Language() string {
	return c.lang
}

// Get returns the translation of msg formatted with vars.
func (c *Catalog) Get(msg string, vars ...interface{}) string {
	return c.po.Get(msg, vars...)
}

func normalizeLang(lang string) string {
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	lang = strings.ReplaceAll(lang, "-", "_")
	if lang == "" || lang == "C" || lang == "POSIX" {
		return "en"
	}
	if strings.HasPrefix(lang, "pt") {
		return "pt_BR"
	}
	return lang
}
