// Package gate decide qué puede ver y mutar una sesión: el gate de
// permisos por categoría y el guard de rutas. Son funciones puras del
// snapshot de sesión; no tienen efectos.
package gate

import "github.com/housebanao/ops-console/internal/domain/entity"

// CanEdit true si la sesión puede mutar registros de la categoría: admin
// siempre puede; un usuario necesita la capacidad editor de su matriz.
// Controla los botones de alta, el selector de acciones y el botón Edit.
func CanEdit(cat entity.Category, s *entity.Session) bool {
	if s == nil {
		return false
	}
	if s.Role == entity.RoleAdmin {
		return true
	}
	return s.Permissions.Get(cat).Editor
}

// CanView true si la sesión puede ver el módulo de la categoría. Un editor
// implica acceso de lectura.
func CanView(cat entity.Category, s *entity.Session) bool {
	if s == nil {
		return false
	}
	if s.Role == entity.RoleAdmin {
		return true
	}
	c := s.Permissions.Get(cat)
	return c.Viewer || c.Editor
}
