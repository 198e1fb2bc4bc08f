package entity

import "github.com/housebanao/ops-console/internal/domain"

// Category categoría de permiso. El conjunto es cerrado: una categoría por
// módulo de la consola.
type Category string

const (
	CategoryCustomer   Category = "customer"
	CategoryAdmin      Category = "admin"
	CategoryPartners   Category = "partners"
	CategoryTransports Category = "transports"
	CategoryBoq        Category = "boq"
	CategoryLead       Category = "lead"
)

// Categories todas las categorías, en el orden en que las muestra la grilla
// de accesos.
var Categories = []Category{
	CategoryCustomer,
	CategoryAdmin,
	CategoryPartners,
	CategoryTransports,
	CategoryBoq,
	CategoryLead,
}

// Capability capacidades de una categoría. El backend admite ambas en true,
// pero la grilla de asignación las trata como excluyentes (ver Toggle).
type Capability struct {
	Editor bool `json:"editor"`
	Viewer bool `json:"viewer"`
}

// CapabilityKind selector de capacidad dentro de una categoría.
type CapabilityKind string

const (
	KindEditor CapabilityKind = "editor"
	KindViewer CapabilityKind = "viewer"
)

// PermissionMatrix matriz de permisos por categoría. Estructura cerrada en
// lugar de un mapa abierto: el acceso a una categoría inexistente no compila.
type PermissionMatrix struct {
	Customer   Capability `json:"customer"`
	Admin      Capability `json:"admin"`
	Partners   Capability `json:"partners"`
	Transports Capability `json:"transports"`
	Boq        Capability `json:"boq"`
	Lead       Capability `json:"lead"`
}

// Get devuelve la capacidad de la categoría. Una categoría desconocida
// devuelve la capacidad cero (sin acceso).
func (m PermissionMatrix) Get(cat Category) Capability {
	switch cat {
	case CategoryCustomer:
		return m.Customer
	case CategoryAdmin:
		return m.Admin
	case CategoryPartners:
		return m.Partners
	case CategoryTransports:
		return m.Transports
	case CategoryBoq:
		return m.Boq
	case CategoryLead:
		return m.Lead
	}
	return Capability{}
}

func (m *PermissionMatrix) ref(cat Category) *Capability {
	switch cat {
	case CategoryCustomer:
		return &m.Customer
	case CategoryAdmin:
		return &m.Admin
	case CategoryPartners:
		return &m.Partners
	case CategoryTransports:
		return &m.Transports
	case CategoryBoq:
		return &m.Boq
	case CategoryLead:
		return &m.Lead
	}
	return nil
}

// Toggle aplica un cambio de la grilla de asignación: editor y viewer son
// excluyentes, así que activar uno fuerza el apagado del otro. La exclusión
// se aplica aquí, en el handler del toggle, no al renderizar.
func (m *PermissionMatrix) Toggle(cat Category, kind CapabilityKind, checked bool) error {
	c := m.ref(cat)
	if c == nil {
		return domain.ErrUnknownCategory
	}
	switch kind {
	case KindEditor:
		c.Editor = checked
		c.Viewer = false
	case KindViewer:
		c.Viewer = checked
		c.Editor = false
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
