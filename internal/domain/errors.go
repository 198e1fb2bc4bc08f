package domain

import "errors"

// Errores de dominio de la consola (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNoSession          = errors.New("no hay sesión activa")
	ErrSessionExpired     = errors.New("la sesión ha expirado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUnknownCategory    = errors.New("categoría de permiso desconocida")
	ErrNetwork            = errors.New("fallo de red con el backend")
)
