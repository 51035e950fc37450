package schema

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fieldops/construction-api/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func validProject() *domain.Project {
	return &domain.Project{
		Name:        "Tower A",
		Type:        "Commercial",
		Location:    "Site 1",
		StartDate:   date(2024, 1, 1),
		EndDate:     date(2024, 12, 31),
		Status:      "Pending",
		Budget:      500_000,
		Manager:     "J. Doe",
		Description: "Office tower",
	}
}

func TestProjectPolicy_Valid(t *testing.T) {
	def := Project()
	p := validProject()
	def.Normalize(p)
	if v := def.Validate(p); v != nil {
		t.Fatalf("expected valid project, got %v", v)
	}
}

func TestProjectPolicy_RequiredFields(t *testing.T) {
	def := Project()
	blankers := map[string]func(*domain.Project){
		"name":      func(p *domain.Project) { p.Name = "  " },
		"type":      func(p *domain.Project) { p.Type = "" },
		"location":  func(p *domain.Project) { p.Location = "" },
		"startDate": func(p *domain.Project) { p.StartDate = time.Time{} },
		"endDate":   func(p *domain.Project) { p.EndDate = time.Time{} },
		"status":    func(p *domain.Project) { p.Status = "" },
		"budget":    func(p *domain.Project) { p.Budget = 0 },
		"manager":   func(p *domain.Project) { p.Manager = "" },
	}
	for field, blank := range blankers {
		p := validProject()
		blank(p)
		def.Normalize(p)
		v := def.Validate(p)
		if v == nil || v[field] == "" {
			t.Errorf("%s: expected a violation, got %v", field, v)
		}
	}
}

func TestProjectPolicy_EnumMembership(t *testing.T) {
	def := Project()
	p := validProject()
	p.Status = "Archived"
	def.Normalize(p)
	v := def.Validate(p)
	if v == nil || !strings.Contains(v["status"], "must be one of") {
		t.Fatalf("expected enum violation, got %v", v)
	}
}

func TestProjectPolicy_DateOrdering(t *testing.T) {
	def := Project()
	p := validProject()
	p.StartDate, p.EndDate = p.EndDate, p.StartDate
	if v := def.Validate(p); v == nil || v["startDate"] == "" {
		t.Fatalf("expected startDate ordering violation, got %v", v)
	}
}

func TestProjectNormalize_CanonicalizesEnumCase(t *testing.T) {
	def := Project()
	p := validProject()
	p.Status = "in progress"
	p.Type = "COMMERCIAL"
	def.Normalize(p)
	if p.Status != domain.ProjectInProgress {
		t.Errorf("status: got %q", p.Status)
	}
	if p.Type != "Commercial" {
		t.Errorf("type: got %q", p.Type)
	}
	if v := def.Validate(p); v != nil {
		t.Errorf("canonicalized record should validate, got %v", v)
	}
}

type staticHasher struct{}

func (staticHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

func validUser() *domain.User {
	return &domain.User{
		Name:     "Alice Example",
		Email:    "ALICE@Example.com",
		Password: "correct horse",
		Role:     "manager",
		Phone:    "555-123-4567",
	}
}

func TestUserNormalize_FoldsCase(t *testing.T) {
	def := User(staticHasher{})
	u := validUser()
	def.Normalize(u)
	if u.Role != domain.RoleManager {
		t.Errorf("role should be upper-cased, got %q", u.Role)
	}
	if u.Email != "alice@example.com" {
		t.Errorf("email should be lower-cased, got %q", u.Email)
	}
	if v := def.Validate(u); v != nil {
		t.Fatalf("expected valid user, got %v", v)
	}
}

func TestUserPrepare_HashesAndClearsPlaintext(t *testing.T) {
	def := User(staticHasher{})
	u := validUser()
	if err := def.Prepare(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	if u.Password != "" {
		t.Error("plaintext must be cleared after hashing")
	}
	if u.PasswordHash != "hashed:correct horse" {
		t.Errorf("got hash %q", u.PasswordHash)
	}

	// Without a new plaintext, Prepare must not disturb the hash.
	if err := def.Prepare(context.Background(), u); err != nil {
		t.Fatal(err)
	}
	if u.PasswordHash != "hashed:correct horse" {
		t.Errorf("hash must survive a no-password update, got %q", u.PasswordHash)
	}
}

func TestUserPolicy_PasswordRequiredOnlyWithoutHash(t *testing.T) {
	def := User(staticHasher{})

	u := validUser()
	u.Password = ""
	def.Normalize(u)
	if v := def.Validate(u); v == nil || v["password"] == "" {
		t.Fatalf("new user without password must be rejected, got %v", v)
	}

	// A stored record (hash present, no plaintext) stays valid.
	u.PasswordHash = "stored-hash"
	if v := def.Validate(u); v != nil {
		t.Fatalf("stored user must not require a plaintext, got %v", v)
	}

	// Supplying a too-short replacement re-activates the rules.
	u.Password = "short"
	if v := def.Validate(u); v == nil || v["password"] == "" {
		t.Fatalf("short replacement password must be rejected, got %v", v)
	}
}

func validRentedEquipment() *domain.Equipment {
	return &domain.Equipment{
		Name:         "Excavator",
		Manufacturer: "Caterpillar",
		SerialNumber: "CAT-320D",
		PurchaseDate: date(2023, 6, 1),
		Ownership:    domain.OwnershipRented,
		Vendor:       "Acme Rentals",
		RentalStart:  datePtr(2024, 1, 1),
		RentalEnd:    datePtr(2024, 6, 30),
		RentalCost:   12_000,
	}
}

func TestEquipmentPolicy_RentedBranch(t *testing.T) {
	def := Equipment()

	e := validRentedEquipment()
	def.Normalize(e)
	if v := def.Validate(e); v != nil {
		t.Fatalf("expected valid rented equipment, got %v", v)
	}

	e.Vendor = ""
	if v := def.Validate(e); v == nil || v["vendor"] == "" {
		t.Fatalf("rented equipment must require a vendor, got %v", v)
	}
}

func TestEquipmentPolicy_OwnedBranchIgnoresRentalFields(t *testing.T) {
	def := Equipment()
	e := validRentedEquipment()
	e.Ownership = domain.OwnershipOwned
	e.Vendor = ""
	e.RentalStart = nil
	e.RentalEnd = nil
	e.RentalCost = 0
	def.Normalize(e)
	if v := def.Validate(e); v != nil {
		t.Fatalf("owned equipment must not require rental fields, got %v", v)
	}
}

func TestEquipmentNormalize_OwnedDropsRentalFacts(t *testing.T) {
	def := Equipment()
	e := validRentedEquipment()
	e.Ownership = "owned"
	def.Normalize(e)
	if e.Ownership != domain.OwnershipOwned {
		t.Errorf("ownership: got %q", e.Ownership)
	}
	if e.Vendor != "" || e.RentalStart != nil || e.RentalEnd != nil || e.RentalCost != 0 {
		t.Error("rental facts must be cleared for owned assets")
	}
}

func TestEquipmentPolicy_RentalDateOrdering(t *testing.T) {
	def := Equipment()
	e := validRentedEquipment()
	e.RentalStart, e.RentalEnd = e.RentalEnd, e.RentalStart
	if v := def.Validate(e); v == nil || v["rentalStart"] == "" {
		t.Fatalf("expected rentalStart ordering violation, got %v", v)
	}
}

func TestEquipmentPolicy_PurchaseNotAfterMaintenance(t *testing.T) {
	def := Equipment()
	e := validRentedEquipment()
	e.MaintenanceDate = datePtr(2023, 1, 1) // before purchase
	if v := def.Validate(e); v == nil || v["purchaseDate"] == "" {
		t.Fatalf("expected purchaseDate ordering violation, got %v", v)
	}
}

func validExpense() *domain.Expense {
	return &domain.Expense{
		Description: "Concrete delivery",
		Category:    "Materials",
		Amount:      2_500,
		Date:        date(2024, 3, 15),
		Vendor:      "ReadyMix Co",
	}
}

func TestExpensePolicy_Valid(t *testing.T) {
	def := Expense()
	x := validExpense()
	def.Normalize(x)
	if v := def.Validate(x); v != nil {
		t.Fatalf("expected valid expense, got %v", v)
	}
}

func TestExpensePolicy_FutureDateRejected(t *testing.T) {
	def := Expense()
	x := validExpense()
	x.Date = time.Now().UTC().AddDate(0, 0, 7)
	if v := def.Validate(x); v == nil || v["date"] == "" {
		t.Fatalf("expected future-date violation, got %v", v)
	}
}

func TestExpensePolicy_AmountBounds(t *testing.T) {
	def := Expense()
	x := validExpense()
	x.Amount = 2_000_000
	if v := def.Validate(x); v == nil || v["amount"] == "" {
		t.Fatalf("expected amount violation, got %v", v)
	}
}

func TestExpensePolicy_ProjectIDShape(t *testing.T) {
	def := Expense()
	x := validExpense()
	x.Project = "not-hex"
	if v := def.Validate(x); v == nil || v["project"] == "" {
		t.Fatalf("expected project id violation, got %v", v)
	}
	x.Project = "507f1f77bcf86cd799439011"
	if v := def.Validate(x); v != nil {
		t.Fatalf("valid hex id must pass, got %v", v)
	}
}
