package forms_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/housebanao/ops-console/internal/application/forms"
	"github.com/housebanao/ops-console/internal/application/wizard"
	"github.com/housebanao/ops-console/internal/domain/entity"
)

// Los totales cuadran al centavo: renglón = cantidad*tarifa-descuento,
// total = renglones + otros cargos.
func TestBOQ_Totales(t *testing.T) {
	b := entity.BOQ{
		Items: []entity.BOQItem{
			{Quantity: decimal.NewFromInt(3), Rate: decimal.RequireFromString("1499.50"), Discount: decimal.NewFromInt(100)},
			{Quantity: decimal.RequireFromString("2.5"), Rate: decimal.NewFromInt(200)},
		},
		OtherCharges: decimal.RequireFromString("49.99"),
	}

	assert.True(t, b.Items[0].LineCost().Equal(decimal.RequireFromString("4398.50")))
	assert.True(t, b.Items[1].LineCost().Equal(decimal.NewFromInt(500)))
	assert.True(t, b.ItemsTotal().Equal(decimal.RequireFromString("4898.50")))
	assert.True(t, b.GrandTotal().Equal(decimal.RequireFromString("4948.49")))
}

// Solo el primer paso lleva obligatorios; con él válido, el resto del
// asistente se recorre con el borrador tal cual.
func TestBOQ_SoloElPrimerPasoExigeCampos(t *testing.T) {
	steps := forms.BOQSteps()
	require.Len(t, steps, 6)

	errs := steps[0].Validate(entity.BOQ{})
	for _, field := range []string{"boqName", "customer", "boqComments", "type"} {
		assert.True(t, errs.Has(field), "falta error en %s", field)
	}

	w, err := wizard.New(steps, func() entity.BOQ { return entity.BOQ{} }, nil, nil)
	require.NoError(t, err)
	w.Open()

	d := w.Draft()
	require.NoError(t, forms.SetPath(d, "boqName", "Villa Fase 1"))
	require.NoError(t, forms.SetPath(d, "customer", "c-1"))
	require.NoError(t, forms.SetPath(d, "boqComments", "Primer corte"))
	require.NoError(t, forms.SetPath(d, "type", "Construction"))

	for step := 1; step < w.Steps(); step++ {
		require.True(t, w.Next(), "el paso %d no debe bloquear", step)
	}
	assert.Equal(t, 6, w.Step())
	assert.Equal(t, "Review", w.StepName())
}

// Saltar hacia adelante exige que el paso actual valide; hacia atrás, no.
func TestBOQ_SaltosEntrePasos(t *testing.T) {
	w, err := wizard.New(forms.BOQSteps(), func() entity.BOQ { return entity.BOQ{} }, nil, nil)
	require.NoError(t, err)
	w.Open()

	require.False(t, w.JumpTo(4), "el paso 1 vacío bloquea el salto")
	assert.Equal(t, 1, w.Step())

	d := w.Draft()
	require.NoError(t, forms.SetPath(d, "boqName", "Villa Fase 1"))
	require.NoError(t, forms.SetPath(d, "customer", "c-1"))
	require.NoError(t, forms.SetPath(d, "boqComments", "Primer corte"))
	require.NoError(t, forms.SetPath(d, "type", "Construction"))

	require.True(t, w.JumpTo(4))
	require.True(t, w.JumpTo(2), "hacia atrás siempre se puede")
	assert.Equal(t, 2, w.Step())
}
