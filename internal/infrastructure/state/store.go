// Package state implementa el almacén durable de estado del cliente: la
// versión explícita e inyectable de lo que el navegador guardaba en
// localStorage (token, rol, email, permisos serializados y perfil).
package state

import (
	"fmt"

	"github.com/housebanao/ops-console/pkg/config"
)

// Claves persistidas por la consola.
const (
	KeyToken       = "token"
	KeyRole        = "role"
	KeyEmail       = "email"
	KeyPermissions = "permissions"
	KeyName        = "name"
	KeyPhone       = "phone"
	KeyDepartment  = "department"
	KeyDesignation = "designation"
)

// Store almacén clave/valor durable. Las implementaciones deben tolerar
// lecturas de claves inexistentes (ok=false, sin error).
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	// Clear borra todas las claves; se usa en el logout.
	Clear() error
	Close() error
}

// Open construye el backend indicado por la configuración.
func Open(cfg config.StateConfig) (Store, error) {
	switch cfg.Backend {
	case "sqlite", "":
		return OpenSQLite(cfg.Path)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("state: backend desconocido %q", cfg.Backend)
	}
}
