package domain

import "time"

// ExpenseCategories is the closed set of legal expense categories.
var ExpenseCategories = []string{"Materials", "Labor", "Equipment", "Transport", "Other"}

// Expense is a logged cost, optionally attributed to a project.
type Expense struct {
	Record      `bson:",inline"`
	Description string    `json:"description" bson:"description"`
	Category    string    `json:"category" bson:"category"`
	Amount      float64   `json:"amount" bson:"amount"`
	Date        time.Time `json:"date" bson:"date"`
	Vendor      string    `json:"vendor,omitempty" bson:"vendor,omitempty"`
	Project     string    `json:"project,omitempty" bson:"project,omitempty"`
}
