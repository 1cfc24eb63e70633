package countries

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slug converts a country name to the file-name form used by the district
// datasets: lowercase ASCII letters and digits joined by underscores.
// "Côte d'Ivoire" becomes "cote_d_ivoire".
func Slug(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		folded = strings.ToLower(strings.TrimSpace(name))
	}
	folded = strings.ReplaceAll(folded, "&", "and")

	var b strings.Builder
	pending := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}
	return b.String()
}

// DistrictsKey returns the dataset key of the district boundaries for name.
func DistrictsKey(name string) string {
	return Slug(name) + "_districts.geojson"
}
