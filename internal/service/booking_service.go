package service

import (
	"time"

	apperrors "carrental/internal/errors"
	"carrental/internal/model"
	"carrental/internal/repository"
)

const (
	// A booking may start up to two hours in the past.
	startGracePeriod = 2 * time.Hour
	// Rentals shorter than a day are rejected.
	minRentalDuration = 24 * time.Hour
)

// BookingService orchestrates the public reservation workflow. Every entry
// point sweeps expired reservations first, so staleness is bounded by call
// frequency.
type BookingService struct {
	store     *repository.ReservationStore
	customers *repository.CustomerDirectory
	sender    *SenderService

	now func() time.Time
}

func NewBookingService(store *repository.ReservationStore, customers *repository.CustomerDirectory, sender *SenderService) *BookingService {
	return &BookingService{
		store:     store,
		customers: customers,
		sender:    sender,
		now:       time.Now,
	}
}

// CreateReservation books a vehicle for the customer, creating or refreshing
// the customer record by email. A returned ID of 0 with a nil error means the
// requested window had no capacity or the customer already holds an
// overlapping reservation; only invalid periods fail with an error.
//
// The availability check and the insert are separate critical sections, so
// two concurrent creates competing for the last unit can both succeed.
func (s *BookingService) CreateReservation(customer model.Customer, vehicleType model.VehicleType, pickupZip int, period model.ReservationPeriod) (int64, error) {
	now := s.now()
	s.store.SweepExpired(now)

	if !periodBookable(period, now) {
		return 0, apperrors.ErrInvalidPeriod
	}

	customerID := s.customers.ResolveOrCreate(customer.Email, customer.FirstName, customer.LastName, customer.PhoneNumber, customer.Age)
	if !s.store.IsAvailable(customerID, vehicleType, pickupZip, period) {
		return 0, nil
	}

	reservationID := s.store.Create(customerID, vehicleType, pickupZip, period)
	s.notify(reservationID, statusConfirmed)
	return reservationID, nil
}

// UpdateReservation replaces the reservation's period, vehicle type, and zip,
// and refreshes the customer profile. Period changes are re-checked for
// availability; the reservation's own current period counts against the
// check.
func (s *BookingService) UpdateReservation(reservationID int64, firstName, lastName, phoneNumber string, vehicleType model.VehicleType, pickupZip int, period model.ReservationPeriod) (*model.Reservation, error) {
	now := s.now()
	s.store.SweepExpired(now)

	if !periodBookable(period, now) {
		return nil, apperrors.ErrInvalidPeriod
	}
	return s.store.Update(reservationID, firstName, lastName, phoneNumber, vehicleType, pickupZip, period)
}

// CancelReservation deactivates an active reservation, freeing its capacity.
func (s *BookingService) CancelReservation(reservationID int64) (*model.Reservation, error) {
	s.store.SweepExpired(s.now())

	res, err := s.store.Cancel(reservationID)
	if err != nil {
		return nil, err
	}
	s.notify(reservationID, statusCancelled)
	return res, nil
}

// GetReservationByID returns the reservation whether active or not.
func (s *BookingService) GetReservationByID(reservationID int64) (*model.Reservation, error) {
	s.store.SweepExpired(s.now())
	return s.store.FindByID(reservationID)
}

// IsRentalAvailable reports whether the customer could book the given type
// and zip for the period right now.
func (s *BookingService) IsRentalAvailable(customerID int64, vehicleType model.VehicleType, pickupZip int, period model.ReservationPeriod) bool {
	s.store.SweepExpired(s.now())
	return s.store.IsAvailable(customerID, vehicleType, pickupZip, period)
}

// ResolveCustomerID returns the ID for the email, creating or refreshing the
// customer record.
func (s *BookingService) ResolveCustomerID(firstName, lastName, phoneNumber, email string, age int) int64 {
	return s.customers.ResolveOrCreate(email, firstName, lastName, phoneNumber, age)
}

// MarkReservationsExpired runs the expiry sweep against the current clock.
func (s *BookingService) MarkReservationsExpired() {
	s.store.SweepExpired(s.now())
}

// periodBookable enforces the now-relative policy: the start must fall after
// now minus the grace period, and the end must fall after the start plus the
// minimum duration. Both comparisons are strict.
func periodBookable(period model.ReservationPeriod, now time.Time) bool {
	return period.StartTime.After(now.Add(-startGracePeriod)) &&
		period.EndTime.After(period.StartTime.Add(minRentalDuration))
}

func (s *BookingService) notify(reservationID int64, status string) {
	if s.sender == nil {
		return
	}
	res, err := s.store.FindByID(reservationID)
	if err != nil {
		return
	}
	customer, ok := s.customers.Get(res.CustomerID)
	if !ok {
		return
	}
	s.sender.SendReservationEmail(customer, *res, status)
	s.sender.SendReservationSMS(customer, *res, status)
}
