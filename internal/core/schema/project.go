package schema

import (
	"strings"

	"github.com/fieldops/construction-api/internal/core/domain"
	"github.com/fieldops/construction-api/internal/core/validation"
)

// ProjectPolicy is exported for the form-state client, which evaluates
// the same rules against its draft for live feedback.
var ProjectPolicy = validation.Policy{
	{Name: "name", Rules: []validation.Rule{validation.Required(), validation.Length(3, 50)}},
	{Name: "type", Rules: []validation.Rule{validation.Required(), validation.OneOf(domain.ProjectTypes...)}},
	{Name: "location", Rules: []validation.Rule{validation.Required(), validation.Length(3, 100)}},
	{Name: "startDate", Rules: []validation.Rule{validation.Required(), validation.NotAfter("endDate")}},
	{Name: "endDate", Rules: []validation.Rule{validation.Required()}},
	{Name: "status", Rules: []validation.Rule{validation.Required(), validation.OneOf(domain.ProjectStatuses...)}},
	{Name: "budget", Rules: []validation.Rule{validation.Required(), validation.Amount(1_000_000)}},
	{Name: "manager", Rules: []validation.Rule{validation.Required(), validation.Length(3, 50)}},
	{Name: "description", Rules: []validation.Rule{validation.MaxLength(200)}},
}

// ProjectFields projects a Project into the policy's field space.
func ProjectFields(p *domain.Project) validation.Getter {
	return func(field string) validation.Value {
		switch field {
		case "name":
			return validation.String(p.Name)
		case "type":
			return validation.String(p.Type)
		case "location":
			return validation.String(p.Location)
		case "startDate":
			return validation.Date(p.StartDate)
		case "endDate":
			return validation.Date(p.EndDate)
		case "status":
			return validation.String(p.Status)
		case "budget":
			return validation.Number(p.Budget)
		case "manager":
			return validation.String(p.Manager)
		case "description":
			return validation.String(p.Description)
		default:
			return validation.Absent()
		}
	}
}

// Project declares the projects resource.
func Project() Definition[domain.Project] {
	return Definition[domain.Project]{
		Name:       "projects",
		Collection: "projects",
		Policy:     ProjectPolicy,
		Fields:     ProjectFields,
		Normalize: func(p *domain.Project) {
			p.Name = strings.TrimSpace(p.Name)
			p.Location = strings.TrimSpace(p.Location)
			p.Manager = strings.TrimSpace(p.Manager)
			p.Description = strings.TrimSpace(p.Description)
			p.Type = canonical(p.Type, domain.ProjectTypes)
			p.Status = canonical(p.Status, domain.ProjectStatuses)
		},
	}
}
