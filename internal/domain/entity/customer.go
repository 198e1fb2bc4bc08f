package entity

// POC persona de contacto adjunta a clientes, partners y transportes.
type POC struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Address dirección fiscal/de obra de un registro.
type Address struct {
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// PaymentDetails condiciones de pago acordadas con un cliente.
type PaymentDetails struct {
	PaymentType            string `json:"paymentType"`
	CreditTimePeriod       string `json:"creditTimePeriod"`
	CreditAmountPercentage string `json:"creditAmountPercentage"`
	CreditAmount           string `json:"creditAmount"`
	PaymentMode            string `json:"paymentMode"`
	AmountPaid             string `json:"amountPaid"`
	Comments               string `json:"comments"`
}

// Estados de cliente/partner que expone el selector de acciones del listado.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Customer cliente de la constructora. El backend asigna ID interno y
// CustomerID legible; el resto lo captura el asistente de alta en tres pasos.
type Customer struct {
	ID             string         `json:"_id,omitempty"`
	CustomerID     string         `json:"customerId,omitempty"`
	CompanyName    string         `json:"companyName"`
	PANNumber      string         `json:"panNumber"`
	TypeOfBusiness string         `json:"typeOfBusiness"`
	FirmType       string         `json:"firmType"`
	POC            POC            `json:"poc"`
	BasicDetails   Address        `json:"basicDetails"`
	HasGST         bool           `json:"hasGst"`
	GSTNumber      string         `json:"gstNumber"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	PaymentStages  []string       `json:"stagesOfPaymentOrWorkDone"`
	Status         string         `json:"status,omitempty"`
}

// Key identificador de de-duplicación en el listado.
func (c Customer) Key() string { return c.ID }
