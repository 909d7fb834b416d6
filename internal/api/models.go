package api

import (
	"time"

	"carrental/internal/model"
)

// Availability
type AvailabilityRequest struct {
	CustomerID  int64     `json:"customer_id"`
	VehicleType string    `json:"vehicle_type"`
	PickupZip   int       `json:"pickup_zip"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// Reservation
type CreateReservationRequest struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	Age         int       `json:"age"`
	VehicleType string    `json:"vehicle_type"`
	PickupZip   int       `json:"pickup_zip"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}
type CreateReservationResponse struct {
	ReservationID int64  `json:"reservation_id"`
	Message       string `json:"message"`
}

type UpdateReservationRequest struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	VehicleType string    `json:"vehicle_type"`
	PickupZip   int       `json:"pickup_zip"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
}

type ReservationResponse struct {
	ReservationID int64     `json:"reservation_id"`
	CustomerID    int64     `json:"customer_id"`
	VehicleType   string    `json:"vehicle_type"`
	PickupZip     int       `json:"pickup_zip"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Active        bool      `json:"active"`
}

func toReservationResponse(r *model.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID: r.ReservationID,
		CustomerID:    r.CustomerID,
		VehicleType:   string(r.VehicleType),
		PickupZip:     r.PickupZip,
		StartTime:     r.Period.StartTime,
		EndTime:       r.Period.EndTime,
		Active:        r.Active,
	}
}
