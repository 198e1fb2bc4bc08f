package forms

import (
	"github.com/housebanao/ops-console/internal/application/wizard"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/domain/validate"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/pkg/logger"
)

// NewPartnerModule módulo de partners: dos pasos (identidad+POC y datos
// fiscales/pago).
func NewPartnerModule(api *rest.Client, opts Options, log *logger.Logger) (*Module[entity.Partner], error) {
	return newModule(api, entity.CategoryPartners, "partners", PartnerSteps(), func() entity.Partner {
		return entity.Partner{Status: entity.StatusActive}
	}, mutStatus, opts, log)
}

// PartnerSteps pasos del asistente de partners.
func PartnerSteps() []wizard.Step[entity.Partner] {
	return []wizard.Step[entity.Partner]{
		{Name: "Identity", Validate: validatePartnerIdentity},
		{Name: "Tax & Payment", Validate: validatePartnerPayment},
	}
}

func validatePartnerIdentity(p entity.Partner) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "entityName", p.EntityName, "Entity Name is required")
	validate.RequiredPAN(errs, "panNumber", p.PANNumber, "Valid PAN Number is required")
	validate.Required(errs, "partnerType", p.PartnerType, "Partner Type is required")
	validate.Required(errs, "firmType", p.FirmType, "Firm Type is required")
	validate.RequiredEmail(errs, "email", p.Email, "Valid Email is required")
	validate.RequiredPhone(errs, "phoneNumber", p.PhoneNumber, "Valid Phone Number is required")
	validate.Required(errs, "pocName", p.POCName, "POC Name is required")
	return errs
}

func validatePartnerPayment(p entity.Partner) validate.ErrorSet {
	errs := validate.ErrorSet{}
	// El GST solo es obligatorio si el partner declara tenerlo.
	if p.HasGST {
		validate.Required(errs, "gstNumber", p.GSTNumber, "GST Number is required")
	}
	validate.Required(errs, "paymentDetails", p.PaymentDetails, "Payment Details are required")
	return errs
}
