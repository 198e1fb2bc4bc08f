package forms

import (
	"github.com/housebanao/ops-console/internal/application/wizard"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/domain/validate"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/pkg/logger"
)

// NewBOQModule módulo de presupuestos. Asistente de seis pasos; solo el
// primero lleva campos obligatorios, el resto son secciones de captura libre
// más la revisión final.
func NewBOQModule(api *rest.Client, opts Options, log *logger.Logger) (*Module[entity.BOQ], error) {
	return newModule(api, entity.CategoryBoq, "boq", BOQSteps(), func() entity.BOQ {
		return entity.BOQ{}
	}, mutStatus, opts, log)
}

// BOQSteps pasos del asistente de presupuestos.
func BOQSteps() []wizard.Step[entity.BOQ] {
	return []wizard.Step[entity.BOQ]{
		{Name: "Create BOQ", Validate: validateBOQCreate},
		{Name: "Basic Details"},
		{Name: "Other Charges"},
		{Name: "Specifications"},
		{Name: "Terms & Conditions"},
		{Name: "Review"},
	}
}

func validateBOQCreate(b entity.BOQ) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "boqName", b.BOQName, "BOQ Name is required")
	validate.Required(errs, "customer", b.Customer, "Customer is required")
	validate.Required(errs, "boqComments", b.BOQComments, "BOQ Comments is required")
	validate.Required(errs, "type", b.Type, "Type is required")
	return errs
}

// BOQDraftFromLead precarga un presupuesto con los datos de contacto y
// dirección de un lead. El campo customer lleva el identificador del lead
// para que el backend los vincule.
func BOQDraftFromLead(l entity.Lead) entity.BOQ {
	return entity.BOQ{
		Customer:     l.ID,
		Type:         l.Type,
		Name:         l.Name,
		Email:        l.Email,
		Number:       l.Number,
		AddressLine1: l.AddressLine1,
		AddressLine2: l.AddressLine2,
		City:         l.City,
		State:        l.State,
		Country:      l.Country,
		Pincode:      l.Pincode,
	}
}
