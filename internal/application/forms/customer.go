package forms

import (
	"github.com/housebanao/ops-console/internal/application/wizard"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/domain/validate"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/pkg/logger"
)

// NewCustomerModule módulo de clientes: alta/edición en tres pasos
// (identidad+POC, dirección, condiciones de pago) y listado con búsqueda
// del lado del servidor y scroll infinito.
func NewCustomerModule(api *rest.Client, opts Options, log *logger.Logger) (*Module[entity.Customer], error) {
	return newModule(api, entity.CategoryCustomer, "customers", CustomerSteps(), func() entity.Customer {
		return entity.Customer{}
	}, mutStatus, opts, log)
}

// CustomerSteps pasos del asistente de clientes.
func CustomerSteps() []wizard.Step[entity.Customer] {
	return []wizard.Step[entity.Customer]{
		{Name: "Identity", Validate: validateCustomerIdentity},
		{Name: "Basic Details", Validate: validateCustomerAddress},
		{Name: "Payment Details", Validate: validateCustomerPayment},
	}
}

func validateCustomerIdentity(c entity.Customer) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "companyName", c.CompanyName, "Customer Name is required")
	validate.RequiredPAN(errs, "panNumber", c.PANNumber, "Valid PAN Number is required")
	validate.Required(errs, "typeOfBusiness", c.TypeOfBusiness, "Partner Type is required")
	validate.Required(errs, "firmType", c.FirmType, "Firm Type is required")
	validate.RequiredEmail(errs, "pocEmail", c.POC.Email, "Valid Email is required")
	validate.RequiredPhone(errs, "pocPhone", c.POC.Phone, "Valid Phone Number is required")
	return errs
}

func validateCustomerAddress(c entity.Customer) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "addressLine1", c.BasicDetails.AddressLine1, "Address Line 1 is required")
	validate.Required(errs, "pincode", c.BasicDetails.Pincode, "Pincode is required")
	validate.Required(errs, "country", c.BasicDetails.Country, "Country is required")
	validate.Required(errs, "city", c.BasicDetails.City, "City is required")
	validate.Required(errs, "state", c.BasicDetails.State, "State is required")
	return errs
}

func validateCustomerPayment(c entity.Customer) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "paymentType", c.PaymentDetails.PaymentType, "Payment Type is required")
	validate.Required(errs, "creditTimePeriod", c.PaymentDetails.CreditTimePeriod, "Credit Time Period is required")
	validate.Required(errs, "creditAmountPercentage", c.PaymentDetails.CreditAmountPercentage, "Credit Amount Percentage is required")
	validate.Required(errs, "creditAmount", c.PaymentDetails.CreditAmount, "Credit Amount is required")
	validate.Required(errs, "paymentMode", c.PaymentDetails.PaymentMode, "Payment Mode is required")
	validate.Required(errs, "amountPaid", c.PaymentDetails.AmountPaid, "Amount Paid is required")
	return errs
}
