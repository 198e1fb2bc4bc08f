package entity

// User usuario interno de la consola, administrado desde el módulo Admin.
// Password/ConfirmPassword solo viajan en el alta; el backend nunca los
// devuelve en los listados.
type User struct {
	ID              string           `json:"_id,omitempty"`
	Name            string           `json:"name"`
	PhoneNumber     string           `json:"phoneNumber"`
	Email           string           `json:"email"`
	Department      string           `json:"department"`
	Designation     string           `json:"designation"`
	Password        string           `json:"password,omitempty"`
	ConfirmPassword string           `json:"confirmPassword,omitempty"`
	Permissions     PermissionMatrix `json:"permissions"`
}

// Key identificador de de-duplicación en el listado.
func (u User) Key() string { return u.ID }
