package entity

// Prioridades de lead para el selector del listado.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Estados de lead. A diferencia de cliente/partner, el ciclo comercial del
// lead tiene estados propios.
const (
	LeadStatusActive      = "Active"
	LeadStatusInactive    = "Inactive"
	LeadStatusBoqSent     = "Boq Sent"
	LeadStatusDealClosed  = "Deal Closed"
	LeadStatusMeetingDone = "Meeting Done"
)

// Tipos de proyecto de un lead.
const (
	LeadTypeConstruction         = "Construction"
	LeadTypeInterior             = "Interior"
	LeadTypeInteriorConstruction = "Interior + Construction"
)

// Lead prospecto comercial. Asistente de tres pasos: contacto, requisitos
// del proyecto y dirección. Los campos de interiores solo aplican cuando el
// tipo incluye Interior.
type Lead struct {
	ID           string `json:"_id,omitempty"`
	LeadID       string `json:"leadId,omitempty"`
	Type         string `json:"type"`
	InteriorType string `json:"interiorType"`
	SubType      string `json:"subType"`
	Pincode      string `json:"pincode"`
	Name         string `json:"name"`
	Number       string `json:"number"`
	Email        string `json:"email"`
	PlotSize     string `json:"plotSize"`
	Floors       string `json:"floors"`
	Rooms        string `json:"rooms"`
	Budget       string `json:"budget"`
	DayToStart   string `json:"dayToStart"`
	ExtraInfo    string `json:"extraInfo"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Country      string `json:"country"`
	City         string `json:"city"`
	State        string `json:"state"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
}

// Key identificador de de-duplicación en el listado.
func (l Lead) Key() string { return l.ID }
