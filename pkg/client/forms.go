package client

import "github.com/fieldops/construction-api/internal/core/schema"

// Per-entity form constructors. Each binds the entity's server-side
// policy to the input parsers its non-text fields need, so the live
// feedback a form shows is exactly what the API will enforce.

func ProjectForm() *Form {
	return NewForm(schema.ProjectPolicy, map[string]Parser{
		"startDate": Date(),
		"endDate":   Date(),
		"budget":    Amount(),
	})
}

func UserForm() *Form {
	return NewForm(schema.UserPolicy, nil)
}

func EquipmentForm() *Form {
	return NewForm(schema.EquipmentPolicy, map[string]Parser{
		"purchaseDate":    Date(),
		"maintenanceDate": Date(),
		"rentalStart":     Date(),
		"rentalEnd":       Date(),
		"rentalCost":      Amount(),
	})
}

func ExpenseForm() *Form {
	return NewForm(schema.ExpensePolicy, map[string]Parser{
		"date":   Date(),
		"amount": Amount(),
	})
}
