package forms

import (
	"github.com/housebanao/ops-console/internal/application/wizard"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/domain/validate"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/pkg/logger"
)

// NewLeadModule módulo de leads: tres pasos (contacto, requisitos del
// proyecto, dirección). Además de status, los leads mutan priority desde el
// listado.
func NewLeadModule(api *rest.Client, opts Options, log *logger.Logger) (*Module[entity.Lead], error) {
	return newModule(api, entity.CategoryLead, "leads", LeadSteps(), NewLeadTemplate, mutStatusPriority, opts, log)
}

// NewLeadTemplate plantilla de alta con los defaults de la zona de
// operación y el ciclo comercial inicial.
func NewLeadTemplate() entity.Lead {
	return entity.Lead{
		Country:  "India",
		City:     "Gurgaon",
		State:    "Haryana",
		Priority: entity.PriorityMedium,
		Status:   entity.LeadStatusActive,
	}
}

// LeadSteps pasos del asistente de leads.
func LeadSteps() []wizard.Step[entity.Lead] {
	return []wizard.Step[entity.Lead]{
		{Name: "Contact", Validate: validateLeadContact},
		{Name: "Requirements", Validate: validateLeadRequirements},
		{Name: "Address", Validate: validateLeadAddress},
	}
}

func validateLeadContact(l entity.Lead) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "type", l.Type, "Type is required")
	validate.Required(errs, "pincode", l.Pincode, "Pincode is required")
	validate.Required(errs, "name", l.Name, "Name is required")
	validate.Required(errs, "number", l.Number, "Number is required")
	validate.Required(errs, "email", l.Email, "Email is required")
	return errs
}

func validateLeadRequirements(l entity.Lead) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "plotSize", l.PlotSize, "Plot Size is required")
	validate.Required(errs, "floors", l.Floors, "Floors requirement is required")
	validate.Required(errs, "rooms", l.Rooms, "Rooms requirement is required")
	validate.Required(errs, "budget", l.Budget, "Budget is required")
	validate.Required(errs, "dayToStart", l.DayToStart, "Day to start is required")
	// Los campos de interiores solo aplican a proyectos con interiores.
	if l.Type == entity.LeadTypeInterior {
		validate.Required(errs, "interiorType", l.InteriorType, "Interior Type is required")
		validate.Required(errs, "subType", l.SubType, "Sub Type is required")
	}
	return errs
}

func validateLeadAddress(l entity.Lead) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "addressLine1", l.AddressLine1, "Address Line 1 is required")
	validate.Required(errs, "addressLine2", l.AddressLine2, "Address Line 2 is required")
	validate.Required(errs, "pincode", l.Pincode, "Pincode is required")
	validate.Required(errs, "country", l.Country, "Country is required")
	validate.Required(errs, "city", l.City, "City is required")
	validate.Required(errs, "state", l.State, "State is required")
	return errs
}
