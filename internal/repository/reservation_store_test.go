package repository

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "carrental/internal/errors"
	"carrental/internal/model"
)

const testZip = 19701

func newTestStore() (*ReservationStore, *CustomerDirectory) {
	customers := NewCustomerDirectory()
	inventory := NewInventoryCatalog(DefaultInventory())
	return NewReservationStore(customers, inventory), customers
}

func daysFromNow(start, end int) model.ReservationPeriod {
	now := time.Now()
	return model.ReservationPeriod{
		StartTime: now.AddDate(0, 0, start),
		EndTime:   now.AddDate(0, 0, end),
	}
}

func TestCapacityLimit(t *testing.T) {
	store, customers := newTestStore()
	window := daysFromNow(2, 4)

	// Three sedans are configured at the reference zip; a fourth overlapping
	// booking must be refused.
	for i, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		custID := customers.ResolveOrCreate(email, "First", "Last", "0", 30)
		require.True(t, store.IsAvailable(custID, model.Sedan, testZip, window), "booking %d", i+1)
		store.Create(custID, model.Sedan, testZip, window)
	}

	fourth := customers.ResolveOrCreate("d@x.com", "First", "Last", "0", 30)
	require.False(t, store.IsAvailable(fourth, model.Sedan, testZip, window))

	// A disjoint window is unaffected by the exhausted one.
	require.True(t, store.IsAvailable(fourth, model.Sedan, testZip, daysFromNow(4, 6)))
}

func TestCustomerCannotDoubleBook(t *testing.T) {
	store, customers := newTestStore()
	custID := customers.ResolveOrCreate("solo@x.com", "First", "Last", "0", 30)
	store.Create(custID, model.Sedan, testZip, daysFromNow(2, 4))

	// Overlap blocks the customer across every vehicle type and zip.
	require.False(t, store.IsAvailable(custID, model.Van, testZip, daysFromNow(3, 5)))
	require.True(t, store.IsAvailable(custID, model.Van, testZip, daysFromNow(4, 6)))
}

func TestAvailabilityUnknownTypeZip(t *testing.T) {
	store, customers := newTestStore()
	custID := customers.ResolveOrCreate("nozip@x.com", "First", "Last", "0", 30)

	require.False(t, store.IsAvailable(custID, model.Sedan, 19702, daysFromNow(2, 4)))
}

func TestCancel(t *testing.T) {
	store, customers := newTestStore()
	custID := customers.ResolveOrCreate("cancel@x.com", "First", "Last", "0", 30)
	id := store.Create(custID, model.SUV, testZip, daysFromNow(2, 4))

	res, err := store.Cancel(id)
	require.NoError(t, err)
	require.False(t, res.Active)

	// A cancelled reservation frees its capacity but stays readable.
	found, err := store.FindByID(id)
	require.NoError(t, err)
	require.False(t, found.Active)

	_, err = store.Cancel(id)
	require.ErrorIs(t, err, apperrors.ErrNotFoundOrExpired)

	_, err = store.Cancel(id + 999)
	require.ErrorIs(t, err, apperrors.ErrNotFoundOrExpired)
}

func TestFindByIDUnknown(t *testing.T) {
	store, _ := newTestStore()
	_, err := store.FindByID(123)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSweepExpired(t *testing.T) {
	store, customers := newTestStore()
	now := time.Now()
	custA := customers.ResolveOrCreate("swa@x.com", "First", "Last", "0", 30)
	custB := customers.ResolveOrCreate("swb@x.com", "First", "Last", "0", 30)
	custC := customers.ResolveOrCreate("swc@x.com", "First", "Last", "0", 30)

	endedYesterday := store.Create(custA, model.Sedan, testZip, model.ReservationPeriod{
		StartTime: now.AddDate(0, 0, -3), EndTime: now.AddDate(0, 0, -1),
	})
	endedTwoDaysAgo := store.Create(custB, model.Sedan, testZip, model.ReservationPeriod{
		StartTime: now.AddDate(0, 0, -4), EndTime: now.AddDate(0, 0, -2),
	})
	endsNextWeek := store.Create(custC, model.Sedan, testZip, model.ReservationPeriod{
		StartTime: now.AddDate(0, 0, 4), EndTime: now.AddDate(0, 0, 6),
	})

	require.Equal(t, 2, store.SweepExpired(now))

	for id, wantActive := range map[int64]bool{
		endedYesterday:  false,
		endedTwoDaysAgo: false,
		endsNextWeek:    true,
	} {
		res, err := store.FindByID(id)
		require.NoError(t, err)
		require.Equal(t, wantActive, res.Active, "reservation %d", id)
	}

	// Idempotent: a second sweep finds nothing left to flip.
	require.Equal(t, 0, store.SweepExpired(now))
}

func TestUpdatePeriod(t *testing.T) {
	store, customers := newTestStore()
	custID := customers.ResolveOrCreate("upd@x.com", "Vivek", "Arora", "6106794402", 35)
	original := daysFromNow(2, 4)
	id := store.Create(custID, model.SUV, testZip, original)

	// Moving to a window free of any overlap succeeds and stores the bounds.
	moved := daysFromNow(6, 8)
	res, err := store.Update(id, "Vivek", "Arora", "6106794402", model.SUV, testZip, moved)
	require.NoError(t, err)
	require.True(t, res.Period.Equal(moved))

	// Exhaust the SUV fleet for days 10-12 with distinct customers; moving
	// there fails and leaves the stored period untouched.
	for i := 0; i < 10; i++ {
		blocker := customers.ResolveOrCreate(string(rune('a'+i))+"blk@x.com", "First", "Last", "0", 30)
		store.Create(blocker, model.SUV, testZip, daysFromNow(10, 12))
	}

	_, err = store.Update(id, "Vivek", "Arora", "6106794402", model.SUV, testZip, daysFromNow(10, 12))
	require.ErrorIs(t, err, apperrors.ErrUnavailable)

	res, err = store.FindByID(id)
	require.NoError(t, err)
	require.True(t, res.Period.Equal(moved))
}

func TestUpdateRefreshesTypeZipAndProfile(t *testing.T) {
	store, customers := newTestStore()
	custID := customers.ResolveOrCreate("rf@x.com", "Old", "Name", "1", 35)
	period := daysFromNow(2, 4)
	id := store.Create(custID, model.Sedan, testZip, period)

	// Same period: no availability re-check, but type, zip, and profile are
	// refreshed.
	res, err := store.Update(id, "New", "Name", "2", model.Truck, testZip, period)
	require.NoError(t, err)
	require.Equal(t, model.Truck, res.VehicleType)

	c, ok := customers.Get(custID)
	require.True(t, ok)
	require.Equal(t, "New", c.FirstName)
	require.Equal(t, "2", c.PhoneNumber)
}

func TestUpdateUnknownReservation(t *testing.T) {
	store, _ := newTestStore()
	_, err := store.Update(42, "F", "L", "0", model.Sedan, testZip, daysFromNow(2, 4))
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateCountsOwnPeriodAgainstItself(t *testing.T) {
	store, customers := newTestStore()
	custID := customers.ResolveOrCreate("self@x.com", "First", "Last", "0", 30)
	id := store.Create(custID, model.Sedan, testZip, daysFromNow(2, 4))

	// The re-check does not exclude the reservation being updated, so a new
	// period overlapping its own current one reads as a customer overlap.
	_, err := store.Update(id, "First", "Last", "0", model.Sedan, testZip, daysFromNow(3, 5))
	require.ErrorIs(t, err, apperrors.ErrUnavailable)
}

func TestConcurrentCreateIDsUnique(t *testing.T) {
	store, customers := newTestStore()
	custID := customers.ResolveOrCreate("conc@x.com", "First", "Last", "0", 30)

	const n = 100
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = store.Create(custID, model.Van, testZip, daysFromNow(2+3*i, 4+3*i))
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		require.False(t, seen[id], "duplicate reservation id %d", id)
		seen[id] = true
	}
}
