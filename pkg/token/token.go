// Package token inspecciona el token emitido por el backend. La consola no
// conoce el secreto de firma (es del servidor), así que la lectura es sin
// verificar: solo sirve para saber si la sesión guardada ya venció sin hacer
// un round-trip.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Expiry devuelve la expiración declarada en el token y true si pudo
// leerla. Un token que no es JWT (opaco) o que no declara exp devuelve
// false: se asume vigente y la autoridad final es el backend.
func Expiry(tokenString string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired informa si el token está vencido respecto de now. Un token ilegible
// u opaco nunca se reporta vencido desde el cliente.
func Expired(tokenString string, now time.Time) bool {
	exp, ok := Expiry(tokenString)
	if !ok {
		return false
	}
	return exp.Before(now)
}
