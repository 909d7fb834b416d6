package utils

import (
	"fmt"
	"strings"

	"carrental/internal/model"
)

// ParseVehicleType maps a request string to a vehicle type, ignoring case and
// surrounding whitespace.
func ParseVehicleType(s string) (model.VehicleType, error) {
	vt := model.VehicleType(strings.ToUpper(strings.TrimSpace(s)))
	if !vt.Valid() {
		return "", fmt.Errorf("unknown vehicle type %q (expected one of %v)", s, model.VehicleTypes())
	}
	return vt, nil
}
