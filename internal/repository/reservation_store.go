package repository

import (
	"sync"
	"sync/atomic"
	"time"

	apperrors "carrental/internal/errors"
	"carrental/internal/model"
)

const reservationIDSeed = 910000000000

// ReservationStore owns the reservation map and the availability computation
// against the inventory catalog. Cancellation and expiry are soft-deletes:
// records stay in the map with Active false so capacity is freed but history
// retained.
type ReservationStore struct {
	mu           sync.RWMutex
	reservations map[int64]*model.Reservation
	nextID       atomic.Int64

	customers *CustomerDirectory
	inventory *InventoryCatalog
}

func NewReservationStore(customers *CustomerDirectory, inventory *InventoryCatalog) *ReservationStore {
	s := &ReservationStore{
		reservations: make(map[int64]*model.Reservation),
		customers:    customers,
		inventory:    inventory,
	}
	s.nextID.Store(reservationIDSeed)
	return s
}

// Create inserts an active reservation and returns its ID. It always succeeds
// structurally; callers must have checked availability first.
func (s *ReservationStore) Create(customerID int64, vehicleType model.VehicleType, pickupZip int, period model.ReservationPeriod) int64 {
	id := s.nextID.Add(1)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[id] = &model.Reservation{
		ReservationID: id,
		CustomerID:    customerID,
		VehicleType:   vehicleType,
		PickupZip:     pickupZip,
		Period:        period,
		Active:        true,
	}
	return id
}

// Cancel flips an active reservation to inactive and returns the updated
// record. Unknown IDs and already-inactive reservations both fail with
// ErrNotFoundOrExpired.
func (s *ReservationStore) Cancel(reservationID int64) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationID]
	if !ok || !r.Active {
		return nil, apperrors.ErrNotFoundOrExpired
	}
	r.Active = false
	out := *r
	return &out, nil
}

// FindByID returns the reservation regardless of its active flag.
func (s *ReservationStore) FindByID(reservationID int64) (*model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := *r
	return &out, nil
}

// Update refreshes a reservation in place. If either period bound changed,
// availability for the new type/zip/period is re-checked first; the check
// does not exclude the reservation being updated from demand, so a new
// period overlapping the reservation's own current one fails with
// ErrUnavailable. The customer profile, vehicle type, and zip are refreshed
// unconditionally.
func (s *ReservationStore) Update(reservationID int64, firstName, lastName, phoneNumber string, vehicleType model.VehicleType, pickupZip int, period model.ReservationPeriod) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[reservationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	if !r.Period.Equal(period) {
		if !s.isAvailableLocked(r.CustomerID, vehicleType, pickupZip, period) {
			return nil, apperrors.ErrUnavailable
		}
		r.Period = period
	}

	s.customers.Refresh(r.CustomerID, firstName, lastName, phoneNumber)
	r.VehicleType = vehicleType
	r.PickupZip = pickupZip

	out := *r
	return &out, nil
}

// IsAvailable is a point-in-time capacity check, not a hold: a concurrent
// Create between this check and the caller's own Create can still take the
// last unit.
func (s *ReservationStore) IsAvailable(customerID int64, vehicleType model.VehicleType, pickupZip int, period model.ReservationPeriod) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAvailableLocked(customerID, vehicleType, pickupZip, period)
}

func (s *ReservationStore) isAvailableLocked(customerID int64, vehicleType model.VehicleType, pickupZip int, period model.ReservationPeriod) bool {
	if s.customerHasOverlapLocked(customerID, period) {
		return false
	}
	entry, ok := s.inventory.Lookup(vehicleType, pickupZip)
	if !ok || entry.UnitCount <= 0 {
		return false
	}
	return entry.UnitCount > s.countOverlappingLocked(vehicleType, pickupZip, period)
}

// customerHasOverlapLocked reports whether the customer already holds an
// active reservation, of any type or zip, overlapping the period.
func (s *ReservationStore) customerHasOverlapLocked(customerID int64, period model.ReservationPeriod) bool {
	for _, r := range s.reservations {
		if r.Active && r.CustomerID == customerID && r.Period.Overlaps(period) {
			return true
		}
	}
	return false
}

func (s *ReservationStore) countOverlappingLocked(vehicleType model.VehicleType, pickupZip int, period model.ReservationPeriod) int {
	count := 0
	for _, r := range s.reservations {
		if r.Active && r.VehicleType == vehicleType && r.PickupZip == pickupZip && r.Period.Overlaps(period) {
			count++
		}
	}
	return count
}

// SweepExpired flips every active reservation whose end time is strictly
// before now to inactive and returns how many were flipped. Idempotent.
func (s *ReservationStore) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for _, r := range s.reservations {
		if r.Active && r.Period.EndTime.Before(now) {
			r.Active = false
			swept++
		}
	}
	return swept
}
