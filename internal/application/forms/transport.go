package forms

import (
	"github.com/housebanao/ops-console/internal/application/wizard"
	"github.com/housebanao/ops-console/internal/domain/entity"
	"github.com/housebanao/ops-console/internal/domain/validate"
	"github.com/housebanao/ops-console/internal/infrastructure/rest"
	"github.com/housebanao/ops-console/pkg/logger"
)

// NewTransportModule módulo de transportes: cuatro pasos (identidad,
// dirección, flota, conductor). La plantilla arranca con un vehículo vacío
// porque el paso de flota valida al menos el primero.
func NewTransportModule(api *rest.Client, opts Options, log *logger.Logger) (*Module[entity.Transport], error) {
	return newModule(api, entity.CategoryTransports, "transports", TransportSteps(), func() entity.Transport {
		return entity.Transport{VehicleDetails: []entity.Vehicle{{}}}
	}, mutStatus, opts, log)
}

// TransportSteps pasos del asistente de transportes.
func TransportSteps() []wizard.Step[entity.Transport] {
	return []wizard.Step[entity.Transport]{
		{Name: "Identity", Validate: validateTransportIdentity},
		{Name: "Basic Details", Validate: validateTransportAddress},
		{Name: "Vehicle Details", Validate: validateTransportVehicle},
		{Name: "Driver Information", Validate: validateTransportDriver},
	}
}

func validateTransportIdentity(t entity.Transport) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "companyName", t.CompanyName, "Company Name is required")
	validate.Required(errs, "panNumber", t.PANNumber, "Pan Number is required")
	validate.Required(errs, "typeOfBusiness", t.TypeOfBusiness, "Type of Business is required")
	validate.Required(errs, "firmType", t.FirmType, "Firm Type is required")
	validate.Required(errs, "poc.name", t.POC.Name, "POC Name is required")
	validate.Required(errs, "poc.email", t.POC.Email, "POC Email is required")
	validate.Required(errs, "poc.phone", t.POC.Phone, "POC Phone Number is required")
	return errs
}

func validateTransportAddress(t entity.Transport) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "basicDetails.addressLine1", t.BasicDetails.AddressLine1, "Address Line 1 is required")
	validate.Required(errs, "basicDetails.pincode", t.BasicDetails.Pincode, "Pincode is required")
	validate.Required(errs, "basicDetails.country", t.BasicDetails.Country, "Country is required")
	validate.Required(errs, "basicDetails.city", t.BasicDetails.City, "City is required")
	validate.Required(errs, "basicDetails.state", t.BasicDetails.State, "State is required")
	return errs
}

func validateTransportVehicle(t entity.Transport) validate.ErrorSet {
	errs := validate.ErrorSet{}
	if len(t.VehicleDetails) == 0 {
		errs.Add("vehicleDetails.0.vehicleNumber", "Vehicle Number is required")
		return errs
	}
	v := t.VehicleDetails[0]
	validate.Required(errs, "vehicleDetails.0.vehicleNumber", v.VehicleNumber, "Vehicle Number is required")
	validate.Required(errs, "vehicleDetails.0.vehicleType", v.VehicleType, "Vehicle Type is required")
	validate.Required(errs, "vehicleDetails.0.capacity", v.Capacity, "Capacity is required")
	validate.Required(errs, "vehicleDetails.0.documents", v.Documents, "Documents are required")
	return errs
}

func validateTransportDriver(t entity.Transport) validate.ErrorSet {
	errs := validate.ErrorSet{}
	validate.Required(errs, "driverInformation.driversName", t.DriverInformation.DriversName, "Driver's Name is required")
	validate.Required(errs, "driverInformation.licenseNumber", t.DriverInformation.LicenseNumber, "License Number is required")
	validate.Required(errs, "driverInformation.operationsDocuments", t.DriverInformation.OperationsDocuments, "Operations Documents are required")
	return errs
}
