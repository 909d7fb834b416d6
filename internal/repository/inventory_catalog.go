package repository

import "carrental/internal/model"

type inventoryKey struct {
	vehicleType model.VehicleType
	pickupZip   int
}

// InventoryCatalog is the fixed fleet capacity per (vehicle type, pickup zip).
// It is seeded once at construction and never mutated afterwards, so lookups
// need no locking.
type InventoryCatalog struct {
	entries map[inventoryKey]model.InventoryEntry
}

func NewInventoryCatalog(entries []model.InventoryEntry) *InventoryCatalog {
	c := &InventoryCatalog{entries: make(map[inventoryKey]model.InventoryEntry, len(entries))}
	for _, e := range entries {
		c.entries[inventoryKey{e.VehicleType, e.PickupZip}] = e
	}
	return c
}

// DefaultInventory is the stock fleet at the reference pickup zip.
func DefaultInventory() []model.InventoryEntry {
	const referenceZip = 19701
	return []model.InventoryEntry{
		{VehicleType: model.Sedan, PickupZip: referenceZip, UnitCount: 3},
		{VehicleType: model.SUV, PickupZip: referenceZip, UnitCount: 10},
		{VehicleType: model.Truck, PickupZip: referenceZip, UnitCount: 30},
		{VehicleType: model.Van, PickupZip: referenceZip, UnitCount: 40},
	}
}

// Lookup returns the capacity entry for the given type and zip, if configured.
func (c *InventoryCatalog) Lookup(vehicleType model.VehicleType, pickupZip int) (model.InventoryEntry, bool) {
	e, ok := c.entries[inventoryKey{vehicleType, pickupZip}]
	return e, ok
}
