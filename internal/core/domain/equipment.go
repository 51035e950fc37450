package domain

import "time"

// Ownership discriminator values. Rental fields are only meaningful
// (and only validated) when Ownership is OwnershipRented.
const (
	OwnershipOwned  = "Owned"
	OwnershipRented = "Rented"
)

var OwnershipKinds = []string{OwnershipOwned, OwnershipRented}

// Equipment is a machine or tool tracked on a site, either owned
// outright or rented from a vendor.
type Equipment struct {
	Record          `bson:",inline"`
	Name            string     `json:"name" bson:"name"`
	Manufacturer    string     `json:"manufacturer" bson:"manufacturer"`
	SerialNumber    string     `json:"serialNumber" bson:"serial_number"`
	PurchaseDate    time.Time  `json:"purchaseDate" bson:"purchase_date"`
	MaintenanceDate *time.Time `json:"maintenanceDate,omitempty" bson:"maintenance_date,omitempty"`
	Ownership       string     `json:"ownership" bson:"ownership"`
	Vendor          string     `json:"vendor,omitempty" bson:"vendor,omitempty"`
	RentalStart     *time.Time `json:"rentalStart,omitempty" bson:"rental_start,omitempty"`
	RentalEnd       *time.Time `json:"rentalEnd,omitempty" bson:"rental_end,omitempty"`
	RentalCost      float64    `json:"rentalCost,omitempty" bson:"rental_cost,omitempty"`
}
