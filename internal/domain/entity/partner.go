package entity

// Partner socio comercial (proveedor/aliado). Asistente de dos pasos:
// identidad + POC y luego datos fiscales/pago.
type Partner struct {
	ID             string `json:"_id,omitempty"`
	PartnerID      string `json:"partnerId,omitempty"`
	EntityName     string `json:"entityName"`
	PANNumber      string `json:"panNumber"`
	PartnerType    string `json:"partnerType"`
	FirmType       string `json:"firmType"`
	POCName        string `json:"pocName"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	HasGST         bool   `json:"hasGst"`
	GSTNumber      string `json:"gstNumber"`
	PaymentDetails string `json:"paymentDetails"`
	Status         string `json:"status,omitempty"`
}

// Key identificador de de-duplicación en el listado.
func (p Partner) Key() string { return p.ID }
