package domain

import "time"

// Project lifecycle states.
const (
	ProjectPending    = "Pending"
	ProjectInProgress = "In Progress"
	ProjectOnHold     = "On Hold"
	ProjectCompleted  = "Completed"
	ProjectCancelled  = "Cancelled"
)

// ProjectStatuses is the closed set of legal status values.
var ProjectStatuses = []string{
	ProjectPending, ProjectInProgress, ProjectOnHold, ProjectCompleted, ProjectCancelled,
}

// ProjectTypes is the closed set of legal project type values.
var ProjectTypes = []string{"Residential", "Commercial", "Industrial", "Infrastructure"}

// Project is a construction project record.
type Project struct {
	Record      `bson:",inline"`
	Name        string    `json:"name" bson:"name"`
	Type        string    `json:"type" bson:"type"`
	Location    string    `json:"location" bson:"location"`
	StartDate   time.Time `json:"startDate" bson:"start_date"`
	EndDate     time.Time `json:"endDate" bson:"end_date"`
	Status      string    `json:"status" bson:"status"`
	Budget      float64   `json:"budget" bson:"budget"`
	Manager     string    `json:"manager" bson:"manager"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
}
