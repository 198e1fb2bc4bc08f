package validate

import "strings"

// Letters deja solo letras A-Z/a-z y recorta a max caracteres. Es la
// sanitización de teclado de los campos de nombre (máx. 50 en el original).
func Letters(s string, max int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// Digits deja solo dígitos 0-9 y recorta a max caracteres. Sanitización de
// teclado de teléfonos (10) y pincodes (6).
func Digits(s string, max int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	out := b.String()
	if max > 0 && len(out) > max {
		out = out[:max]
	}
	return out
}

// Upper normaliza a mayúsculas (los inputs de PAN fuerzan mayúsculas).
func Upper(s string) string { return strings.ToUpper(s) }
