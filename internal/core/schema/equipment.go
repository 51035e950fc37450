package schema

import (
	"regexp"
	"strings"

	"github.com/fieldops/construction-api/internal/core/domain"
	"github.com/fieldops/construction-api/internal/core/validation"
)

var (
	alnumSpaces = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)
	alnumHyphen = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
)

// rented guards the rental-only branch of the equipment policy.
func rented(get validation.Getter) bool {
	return get("ownership").Str == domain.OwnershipRented
}

// EquipmentPolicy validates equipment records. The vendor and rental
// fields only participate while the ownership discriminator selects
// the rented branch.
var EquipmentPolicy = validation.Policy{
	{Name: "name", Rules: []validation.Rule{validation.Required(), validation.Length(3, 50)}},
	{Name: "manufacturer", Rules: []validation.Rule{
		validation.Required(),
		validation.Length(2, 50),
		validation.Match(alnumSpaces, "contain only letters, numbers and spaces"),
	}},
	{Name: "serialNumber", Rules: []validation.Rule{
		validation.Required(),
		validation.Length(3, 30),
		validation.Match(alnumHyphen, "contain only letters, numbers and hyphens"),
	}},
	{Name: "purchaseDate", Rules: []validation.Rule{
		validation.Required(),
		validation.NotFuture(),
		validation.NotAfter("maintenanceDate"),
	}},
	{Name: "ownership", Rules: []validation.Rule{validation.Required(), validation.OneOf(domain.OwnershipKinds...)}},
	{Name: "vendor", When: rented, Rules: []validation.Rule{
		validation.Required(),
		validation.Length(2, 50),
		validation.Match(alnumSpaces, "contain only letters, numbers and spaces"),
	}},
	{Name: "rentalStart", When: rented, Rules: []validation.Rule{
		validation.Required(),
		validation.NotAfter("rentalEnd"),
	}},
	{Name: "rentalEnd", When: rented, Rules: []validation.Rule{validation.Required()}},
	{Name: "rentalCost", When: rented, Rules: []validation.Rule{validation.Required(), validation.Amount(1_000_000)}},
}

// EquipmentFields projects an Equipment into the policy's field space.
func EquipmentFields(e *domain.Equipment) validation.Getter {
	return func(field string) validation.Value {
		switch field {
		case "name":
			return validation.String(e.Name)
		case "manufacturer":
			return validation.String(e.Manufacturer)
		case "serialNumber":
			return validation.String(e.SerialNumber)
		case "purchaseDate":
			return validation.Date(e.PurchaseDate)
		case "maintenanceDate":
			return validation.DatePtr(e.MaintenanceDate)
		case "ownership":
			return validation.String(e.Ownership)
		case "vendor":
			return validation.String(e.Vendor)
		case "rentalStart":
			return validation.DatePtr(e.RentalStart)
		case "rentalEnd":
			return validation.DatePtr(e.RentalEnd)
		case "rentalCost":
			return validation.Number(e.RentalCost)
		default:
			return validation.Absent()
		}
	}
}

// Equipment declares the equipment resource.
func Equipment() Definition[domain.Equipment] {
	return Definition[domain.Equipment]{
		Name:       "equipment",
		Collection: "equipment",
		Policy:     EquipmentPolicy,
		Fields:     EquipmentFields,
		Normalize: func(e *domain.Equipment) {
			e.Name = strings.TrimSpace(e.Name)
			e.Manufacturer = strings.TrimSpace(e.Manufacturer)
			e.SerialNumber = strings.ToUpper(strings.TrimSpace(e.SerialNumber))
			e.Ownership = canonical(e.Ownership, domain.OwnershipKinds)
			e.Vendor = strings.TrimSpace(e.Vendor)
			if e.Ownership == domain.OwnershipOwned {
				// Owned assets carry no rental facts.
				e.Vendor = ""
				e.RentalStart = nil
				e.RentalEnd = nil
				e.RentalCost = 0
			}
		},
	}
}
