package gate

import "github.com/housebanao/ops-console/internal/domain/entity"

// Decision resultado del guard de rutas.
type Decision int

const (
	// Allow la ruta se renderiza.
	Allow Decision = iota
	// RedirectLogin no hay token: se navega a /login.
	RedirectLogin
	// RedirectHome la sesión no tiene el rol requerido: se navega a /.
	RedirectHome
	// NotFound ruta fuera de la tabla.
	NotFound
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return "not-found"
}

// Route entrada de la tabla de navegación.
type Route struct {
	Path         string
	RequiredRole entity.Role // vacío = solo exige token
	Public       bool        // sin token también se renderiza
}

// routes tabla de navegación de la consola. Mismo mapa de rutas y roles que
// el shell de la aplicación.
var routes = []Route{
	{Path: "/login", Public: true},
	{Path: "/signinn", Public: true},
	{Path: "/", RequiredRole: entity.RoleUser},
	{Path: "/customers", RequiredRole: entity.RoleUser},
	{Path: "/partner", RequiredRole: entity.RoleUser},
	{Path: "/transport", RequiredRole: entity.RoleUser},
	{Path: "/lead", RequiredRole: entity.RoleUser},
	{Path: "/boq", RequiredRole: entity.RoleUser},
	{Path: "/form", RequiredRole: entity.RoleUser},
	{Path: "/profile", RequiredRole: entity.RoleUser},
	{Path: "/admin", RequiredRole: entity.RoleAdmin},
	{Path: "/setting", RequiredRole: entity.RoleAdmin},
}

func lookup(path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// Resolve evalúa el guard para una navegación: sin token se redirige al
// login; con token pero sin el rol requerido, al home. El rol admin pasa
// todos los gates. Se evalúa en cada navegación sobre el snapshot actual,
// sin caché propia.
func Resolve(path string, s *entity.Session) Decision {
	route, ok := lookup(path)
	if !ok {
		return NotFound
	}
	if route.Public {
		return Allow
	}
	if s == nil || s.Token == "" {
		return RedirectLogin
	}
	if route.RequiredRole != "" && s.Role != route.RequiredRole && s.Role != entity.RoleAdmin {
		return RedirectHome
	}
	return Allow
}
