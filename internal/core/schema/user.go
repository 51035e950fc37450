package schema

import (
	"context"
	"strings"

	"github.com/fieldops/construction-api/internal/core/domain"
	"github.com/fieldops/construction-api/internal/core/ports"
	"github.com/fieldops/construction-api/internal/core/validation"
)

// UserPolicy validates user records. The password rules stay active
// until a hash exists, and re-activate whenever a new plaintext is
// supplied on update, so a stored record never loses its secret.
var UserPolicy = validation.Policy{
	{Name: "name", Rules: []validation.Rule{validation.Required(), validation.Length(3, 50)}},
	{Name: "email", Rules: []validation.Rule{validation.Required(), validation.Email()}},
	{
		Name:  "password",
		Rules: []validation.Rule{validation.Required(), validation.Length(8, 72)},
		When: func(get validation.Getter) bool {
			return get("passwordHash").Blank() || !get("password").Blank()
		},
	},
	{Name: "role", Rules: []validation.Rule{validation.Required(), validation.OneOf(domain.UserRoles...)}},
	{Name: "phone", Rules: []validation.Rule{validation.Required(), validation.Digits()}},
}

// UserFields projects a User into the policy's field space.
func UserFields(u *domain.User) validation.Getter {
	return func(field string) validation.Value {
		switch field {
		case "name":
			return validation.String(u.Name)
		case "email":
			return validation.String(u.Email)
		case "password":
			return validation.String(u.Password)
		case "passwordHash":
			return validation.String(u.PasswordHash)
		case "role":
			return validation.String(u.Role)
		case "phone":
			return validation.String(u.Phone)
		default:
			return validation.Absent()
		}
	}
}

// User declares the users resource. The hasher runs after validation,
// converting the transient plaintext into the stored hash.
func User(hasher ports.PasswordHasher) Definition[domain.User] {
	return Definition[domain.User]{
		Name:       "users",
		Collection: "users",
		Unique:     []string{"email"},
		Policy:     UserPolicy,
		Fields:     UserFields,
		Normalize: func(u *domain.User) {
			u.Name = strings.TrimSpace(u.Name)
			u.Email = strings.ToLower(strings.TrimSpace(u.Email))
			u.Role = strings.ToUpper(strings.TrimSpace(u.Role))
			u.Phone = strings.TrimSpace(u.Phone)
		},
		Prepare: func(_ context.Context, u *domain.User) error {
			if u.Password == "" {
				return nil
			}
			hash, err := hasher.Hash(u.Password)
			if err != nil {
				return err
			}
			u.PasswordHash = hash
			u.Password = ""
			return nil
		},
		Sanitize: func(u *domain.User) {
			u.Password = ""
			u.PasswordHash = ""
		},
	}
}
