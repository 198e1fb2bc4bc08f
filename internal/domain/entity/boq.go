package entity

import "github.com/shopspring/decimal"

// BOQItem renglón del presupuesto: cantidades y montos como decimales para
// que los totales cuadren al centavo.
type BOQItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Discount    decimal.Decimal `json:"discount"`
	Cost        decimal.Decimal `json:"cost"`
}

// LineCost costo del renglón: cantidad por tarifa menos descuento,
// redondeado a 2 decimales.
func (i BOQItem) LineCost() decimal.Decimal {
	return i.Quantity.Mul(i.Rate).Sub(i.Discount).Round(2)
}

// SiteCondition condición de obra registrada durante la inspección.
type SiteCondition struct {
	Description string `json:"description"`
	UOM         string `json:"uom"`
	Standard    string `json:"standard"`
}

// Specification especificación técnica por categoría.
type Specification struct {
	CategoryName string `json:"categoryName"`
	Description  string `json:"description"`
	Image        string `json:"image,omitempty"`
}

// BOQ presupuesto detallado (Bill of Quantities) asociado a un cliente o
// generado a partir de un lead. Asistente de seis pasos; solo el primero
// tiene campos obligatorios.
type BOQ struct {
	ID                  string          `json:"_id,omitempty"`
	BOQID               string          `json:"boqId,omitempty"`
	BOQName             string          `json:"boqName"`
	Customer            string          `json:"customer"`
	BOQComments         string          `json:"boqComments"`
	Type                string          `json:"type"`
	CreatedBy           string          `json:"createdBy"`
	AdditionalInfo      string          `json:"additionalInfo"`
	ConstructionDetails string          `json:"constructionDetails"`
	Area                string          `json:"area"`
	Category            string          `json:"category"`
	Items               []BOQItem       `json:"items"`
	SiteInspection      string          `json:"siteInspection"`
	OtherCharges        decimal.Decimal `json:"otherCharges"`
	SiteConditions      []SiteCondition `json:"siteConditions"`
	Specifications      []Specification `json:"specifications"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Number              string          `json:"number"`
	AddressLine1        string          `json:"addressLine1"`
	AddressLine2        string          `json:"addressLine2"`
	City                string          `json:"city"`
	State               string          `json:"state"`
	Country             string          `json:"country"`
	Pincode             string          `json:"pincode"`
	Status              string          `json:"status,omitempty"`
}

// Key identificador de de-duplicación en el listado.
func (b BOQ) Key() string { return b.ID }

// ItemsTotal suma de los costos de renglón.
func (b BOQ) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items {
		total = total.Add(it.LineCost())
	}
	return total
}

// GrandTotal total del presupuesto: renglones más otros cargos.
func (b BOQ) GrandTotal() decimal.Decimal {
	return b.ItemsTotal().Add(b.OtherCharges).Round(2)
}
