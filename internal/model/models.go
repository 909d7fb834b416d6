package model

// Reservation is a booking of one vehicle of a given type at a pickup zip for
// a period. Cancellation and expiry flip Active to false; records are never
// deleted.
type Reservation struct {
	ReservationID int64
	CustomerID    int64
	VehicleType   VehicleType
	PickupZip     int
	Period        ReservationPeriod
	Active        bool
}

// Customer identity is the email; the remaining profile fields are
// overwritten on every booking with the latest supplied values.
type Customer struct {
	CustomerID  int64
	FirstName   string
	LastName    string
	PhoneNumber string
	Email       string
	Age         int
}

// InventoryEntry is the fleet capacity for one (vehicle type, pickup zip)
// pair. UnitCount is a ceiling compared against live demand, never
// decremented.
type InventoryEntry struct {
	VehicleType VehicleType
	PickupZip   int
	UnitCount   int
}
