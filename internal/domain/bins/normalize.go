package bins

import (
	"regexp"
	"strings"
)

var (
	integerLikeRe = regexp.MustCompile(`^\d+(\.0+)?$`)
	nonDigitRe    = regexp.MustCompile(`\D`)
)

// NormalizePalletID conserva IDs alfanuméricos (ej. "JTL00496") tal cual, recortando
// espacios; un valor entero-con-decimal tipo "123.0" (artefacto del export) queda "123".
func NormalizePalletID(val string) string {
	s := strings.TrimSpace(val)
	if integerLikeRe.MatchString(s) {
		if i := strings.IndexByte(s, '.'); i >= 0 {
			s = s[:i]
		}
	}
	return s
}

// NormalizeLotNumber reduce la referencia de lote a solo dígitos sin ceros a la
// izquierda; si no queda nada, retorna cadena vacía.
func NormalizeLotNumber(val string) string {
	s := strings.TrimSpace(val)
	if integerLikeRe.MatchString(s) {
		if i := strings.IndexByte(s, '.'); i >= 0 {
			s = s[:i]
		}
	} else {
		s = nonDigitRe.ReplaceAllString(s, "")
	}
	return strings.TrimLeft(s, "0")
}
