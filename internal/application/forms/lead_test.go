package forms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housebanao/ops-console/internal/application/forms"
	"github.com/housebanao/ops-console/internal/domain/entity"
)

// La plantilla de alta trae los defaults de zona y ciclo comercial.
func TestLead_PlantillaConDefaults(t *testing.T) {
	l := forms.NewLeadTemplate()

	assert.Equal(t, "India", l.Country)
	assert.Equal(t, "Gurgaon", l.City)
	assert.Equal(t, "Haryana", l.State)
	assert.Equal(t, entity.PriorityMedium, l.Priority)
	assert.Equal(t, entity.LeadStatusActive, l.Status)
}

// Los campos de interiores solo son obligatorios cuando el tipo es Interior.
func TestLead_CamposDeInterioresCondicionales(t *testing.T) {
	steps := forms.LeadSteps()
	require.Len(t, steps, 3)
	requirements := steps[1].Validate

	base := entity.Lead{
		PlotSize:   "200sqyd",
		Floors:     "2",
		Rooms:      "4",
		Budget:     "50L",
		DayToStart: "Immediate",
	}

	l := base
	l.Type = entity.LeadTypeInterior
	errs := requirements(l)
	assert.True(t, errs.Has("interiorType"))
	assert.True(t, errs.Has("subType"))

	l.InteriorType = "Modular"
	l.SubType = "Kitchen"
	assert.True(t, requirements(l).Empty())

	// Construcción pura no exige interiores.
	l = base
	l.Type = entity.LeadTypeConstruction
	assert.True(t, requirements(l).Empty())

	// El tipo combinado tampoco: solo el tipo Interior exacto los pide.
	l = base
	l.Type = entity.LeadTypeInteriorConstruction
	assert.True(t, requirements(l).Empty())
}

func TestLead_ContactoYDireccionObligatorios(t *testing.T) {
	steps := forms.LeadSteps()

	errs := steps[0].Validate(entity.Lead{})
	for _, field := range []string{"type", "pincode", "name", "number", "email"} {
		assert.True(t, errs.Has(field), "falta error en %s", field)
	}

	errs = steps[2].Validate(forms.NewLeadTemplate())
	assert.True(t, errs.Has("addressLine1"))
	assert.True(t, errs.Has("addressLine2"))
	assert.False(t, errs.Has("country"), "el default de país ya viene puesto")
}

// Un lead siembra el borrador de BOQ con su contacto y dirección; customer
// lleva el id del lead para que el backend los vincule.
func TestLead_SiembraBorradorDeBOQ(t *testing.T) {
	l := entity.Lead{
		ID:           "l-7",
		Type:         entity.LeadTypeConstruction,
		Name:         "Ravi",
		Email:        "ravi@acme.in",
		Number:       "9876543210",
		AddressLine1: "Plot 12",
		AddressLine2: "Sector 44",
		City:         "Gurgaon",
		State:        "Haryana",
		Country:      "India",
		Pincode:      "122003",
	}

	b := forms.BOQDraftFromLead(l)

	assert.Equal(t, "l-7", b.Customer)
	assert.Equal(t, entity.LeadTypeConstruction, b.Type)
	assert.Equal(t, "Ravi", b.Name)
	assert.Equal(t, "ravi@acme.in", b.Email)
	assert.Equal(t, "9876543210", b.Number)
	assert.Equal(t, "Plot 12", b.AddressLine1)
	assert.Equal(t, "122003", b.Pincode)
	assert.Empty(t, b.BOQName, "el nombre del presupuesto lo pone el usuario")
}
