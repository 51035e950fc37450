package schema

import (
	"regexp"
	"strings"

	"github.com/fieldops/construction-api/internal/core/domain"
	"github.com/fieldops/construction-api/internal/core/validation"
)

var objectIDHex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ExpensePolicy validates expense records.
var ExpensePolicy = validation.Policy{
	{Name: "description", Rules: []validation.Rule{validation.Required(), validation.Length(3, 200)}},
	{Name: "category", Rules: []validation.Rule{validation.Required(), validation.OneOf(domain.ExpenseCategories...)}},
	{Name: "amount", Rules: []validation.Rule{validation.Required(), validation.Amount(1_000_000)}},
	{Name: "date", Rules: []validation.Rule{validation.Required(), validation.NotFuture()}},
	{Name: "vendor", Rules: []validation.Rule{
		validation.MaxLength(50),
		validation.Match(alnumSpaces, "contain only letters, numbers and spaces"),
	}},
	{Name: "project", Rules: []validation.Rule{validation.Match(objectIDHex, "be a valid project id")}},
}

// ExpenseFields projects an Expense into the policy's field space.
func ExpenseFields(x *domain.Expense) validation.Getter {
	return func(field string) validation.Value {
		switch field {
		case "description":
			return validation.String(x.Description)
		case "category":
			return validation.String(x.Category)
		case "amount":
			return validation.Number(x.Amount)
		case "date":
			return validation.Date(x.Date)
		case "vendor":
			return validation.String(x.Vendor)
		case "project":
			return validation.String(x.Project)
		default:
			return validation.Absent()
		}
	}
}

// Expense declares the expenses resource.
func Expense() Definition[domain.Expense] {
	return Definition[domain.Expense]{
		Name:       "expenses",
		Collection: "expenses",
		Policy:     ExpensePolicy,
		Fields:     ExpenseFields,
		Normalize: func(x *domain.Expense) {
			x.Description = strings.TrimSpace(x.Description)
			x.Category = canonical(x.Category, domain.ExpenseCategories)
			x.Vendor = strings.TrimSpace(x.Vendor)
			x.Project = strings.TrimSpace(x.Project)
		},
	}
}
