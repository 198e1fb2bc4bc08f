package entity

// Role rol de la sesión frente al backend.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid informa si el rol es uno de los reconocidos por el backend.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Session estado de autenticación de la consola.
// Se crea en el login, se persiste en el almacén de estado del cliente
// y se destruye en el logout. Fuera del gestor de sesión es de solo lectura.
type Session struct {
	Token       string
	Role        Role
	Email       string
	Permissions PermissionMatrix
}

// Profile campos editables del perfil de usuario (panel del header).
type Profile struct {
	Name        string
	Phone       string
	Department  string
	Designation string
}
