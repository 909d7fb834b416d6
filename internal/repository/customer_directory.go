package repository

import (
	"sync"
	"sync/atomic"

	"carrental/internal/model"
)

// customerIDSeed keeps customer IDs visually distinct from reservation IDs;
// the two counters are never compared to each other.
const customerIDSeed = 70000000000

// CustomerDirectory resolves customers by email and owns the customer map.
type CustomerDirectory struct {
	mu        sync.RWMutex
	customers map[int64]*model.Customer
	nextID    atomic.Int64
}

func NewCustomerDirectory() *CustomerDirectory {
	d := &CustomerDirectory{customers: make(map[int64]*model.Customer)}
	d.nextID.Store(customerIDSeed)
	return d
}

// ResolveOrCreate looks up a customer by exact email match. Exactly one match
// refreshes that customer's profile with the supplied values and reuses its
// ID; otherwise a new customer is allocated. Email uniqueness is assumed, not
// enforced: more than one match falls through to allocation.
func (d *CustomerDirectory) ResolveOrCreate(email, firstName, lastName, phoneNumber string, age int) int64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	var matches []*model.Customer
	for _, c := range d.customers {
		if c.Email == email {
			matches = append(matches, c)
		}
	}
	if len(matches) == 1 {
		existing := matches[0]
		existing.FirstName = firstName
		existing.LastName = lastName
		existing.PhoneNumber = phoneNumber
		existing.Age = age
		return existing.CustomerID
	}

	id := d.nextID.Add(1)
	d.customers[id] = &model.Customer{
		CustomerID:  id,
		FirstName:   firstName,
		LastName:    lastName,
		PhoneNumber: phoneNumber,
		Email:       email,
		Age:         age,
	}
	return id
}

// Refresh overwrites the mutable profile fields of an existing customer. A
// missing ID is a no-op.
func (d *CustomerDirectory) Refresh(customerID int64, firstName, lastName, phoneNumber string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.customers[customerID]
	if !ok {
		return
	}
	c.FirstName = firstName
	c.LastName = lastName
	c.PhoneNumber = phoneNumber
}

// Get returns a copy of the customer record.
func (d *CustomerDirectory) Get(customerID int64) (model.Customer, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	c, ok := d.customers[customerID]
	if !ok {
		return model.Customer{}, false
	}
	return *c, true
}
