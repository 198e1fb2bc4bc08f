// Package validate contiene las reglas de validación de campo de los
// asistentes de alta/edición. Las reglas se evalúan en cada intento de
// avance o envío, nunca con debounce; la sanitización de entrada ocurre
// al teclear (ver sanitize.go).
package validate

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Teléfono indio: 10 dígitos, el primero entre 6 y 9.
	phoneRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	// PAN: 5 letras mayúsculas, 4 dígitos, 1 letra mayúscula. Sensible a
	// mayúsculas: "abcde1234f" no pasa.
	panRe     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]{1}$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
)

// ErrorSet resultado de validar un paso o el registro completo: ruta de
// campo → mensaje legible. Se recalcula en cada intento y se limpia al
// cerrar el modal.
type ErrorSet map[string]string

// Add registra el error del campo. El primer mensaje de un campo gana.
func (e ErrorSet) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Has informa si el campo tiene error.
func (e ErrorSet) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Empty informa si no hay errores (el paso puede avanzar).
func (e ErrorSet) Empty() bool { return len(e) == 0 }

// Merge incorpora los errores de otro conjunto.
func (e ErrorSet) Merge(other ErrorSet) {
	for f, m := range other {
		e.Add(f, m)
	}
}

// Email true si s cumple el formato de correo.
func Email(s string) bool { return emailRe.MatchString(s) }

// Phone true si s es un teléfono de 10 dígitos con primer dígito 6-9.
func Phone(s string) bool { return phoneRe.MatchString(s) }

// PAN true si s es un PAN válido (sensible a mayúsculas).
func PAN(s string) bool { return panRe.MatchString(s) }

// Pincode true si s son exactamente 6 dígitos.
func Pincode(s string) bool { return pincodeRe.MatchString(s) }

// Required agrega un error si el valor está vacío. Devuelve true si el
// campo está presente.
func Required(errs ErrorSet, field, value, msg string) bool {
	if value == "" {
		errs.Add(field, msg)
		return false
	}
	return true
}

// RequiredEmail exige presencia y formato de correo.
func RequiredEmail(errs ErrorSet, field, value, msg string) {
	if value == "" || !Email(value) {
		errs.Add(field, msg)
	}
}

// RequiredPhone exige presencia y formato de teléfono.
func RequiredPhone(errs ErrorSet, field, value, msg string) {
	if value == "" || !Phone(value) {
		errs.Add(field, msg)
	}
}

// RequiredPAN exige presencia y formato de PAN.
func RequiredPAN(errs ErrorSet, field, value, msg string) {
	if value == "" || !PAN(value) {
		errs.Add(field, msg)
	}
}

// PasswordsMatch exige que la confirmación coincida con la contraseña.
func PasswordsMatch(errs ErrorSet, field, password, confirm string) {
	if password != confirm {
		errs.Add(field, "Passwords do not match")
	}
}
