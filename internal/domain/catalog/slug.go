package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Caracteres sin descomposición Unicode que igual queremos transliterar
// (el catálogo original traía nombres en turco).
var slugReplacer = strings.NewReplacer(
	"ı", "i",
	"ß", "ss",
	"æ", "ae",
	"ø", "o",
	"đ", "d",
	"&", " ",
)

// Slugify genera el slug de un nombre de producto o categoría:
// minúsculas, diacríticos eliminados (NFD + quitar marcas combinantes),
// cualquier secuencia no alfanumérica colapsada a un solo guion.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugReplacer.Replace(s)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(t, s); err == nil {
		s = folded
	}

	var b strings.Builder
	b.Grow(len(s))
	prevDash := true // evita guion inicial
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		default:
			if !prevDash {
				b.WriteByte('-')
				prevDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
