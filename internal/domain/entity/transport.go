package entity

// Vehicle vehículo declarado por un proveedor de transporte.
type Vehicle struct {
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType"`
	Capacity      string `json:"capacity"`
	Documents     string `json:"documents"`
}

// DriverInformation datos del conductor y documentación de operación.
type DriverInformation struct {
	DriversName         string `json:"driversName"`
	LicenseNumber       string `json:"licenseNumber"`
	OperationsDocuments string `json:"operationsDocuments"`
}

// Transport proveedor de transporte. Asistente de cuatro pasos: identidad,
// dirección, flota y conductor. VehicleDetails lleva al menos un vehículo.
type Transport struct {
	ID                string            `json:"_id,omitempty"`
	TransportID       string            `json:"transportId,omitempty"`
	CompanyName       string            `json:"companyName"`
	PANNumber         string            `json:"panNumber"`
	TypeOfBusiness    string            `json:"typeOfBusiness"`
	FirmType          string            `json:"firmType"`
	POC               POC               `json:"poc"`
	BasicDetails      Address           `json:"basicDetails"`
	GSTNumber         string            `json:"gstNumber"`
	VehicleDetails    []Vehicle         `json:"vehicleDetails"`
	DriverInformation DriverInformation `json:"driverInformation"`
	Status            string            `json:"status,omitempty"`
}

// Key identificador de de-duplicación en el listado.
func (t Transport) Key() string { return t.ID }
