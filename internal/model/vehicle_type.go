package model

// VehicleType is the closed set of rentable vehicle categories.
type VehicleType string

const (
	Sedan VehicleType = "SEDAN"
	SUV   VehicleType = "SUV"
	Van   VehicleType = "VAN"
	Truck VehicleType = "TRUCK"
)

// VehicleTypes lists every known type, in fleet-size order.
func VehicleTypes() []VehicleType {
	return []VehicleType{Sedan, SUV, Truck, Van}
}

func (v VehicleType) Valid() bool {
	switch v {
	case Sedan, SUV, Van, Truck:
		return true
	}
	return false
}
