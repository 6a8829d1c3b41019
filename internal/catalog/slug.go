package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	nonWord    = regexp.MustCompile(`[^\w\s-]`)
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRun  = regexp.MustCompile(`-+`)
)

// Slugify deriva o slug de rota a partir do nome do serviço:
// minúsculas, sem acentos, espaços viram hífen.
// "Corte de Cabelo" -> "corte-de-cabelo".
func Slugify(name string) string {
	s := strings.ToLower(name)
	if plain, _, err := transform.String(stripAccents, s); err == nil {
		s = plain
	}
	s = nonWord.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	return strings.TrimSpace(s)
}
