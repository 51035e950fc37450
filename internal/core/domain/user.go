package domain

const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleWorker  = "WORKER"
)

// UserRoles is the closed set of legal role values. Roles are stored
// upper-cased; normalization happens before validation.
var UserRoles = []string{RoleAdmin, RoleManager, RoleWorker}

// User models a person with access to the system. Password carries the
// plaintext only between request decoding and hashing; neither it nor
// the hash is ever serialized to JSON.
type User struct {
	Record       `bson:",inline"`
	Name         string `json:"name" bson:"name"`
	Email        string `json:"email" bson:"email"`
	Password     string `json:"-" bson:"-"`
	PasswordHash string `json:"-" bson:"password_hash,omitempty"`
	Role         string `json:"role" bson:"role"`
	Phone        string `json:"phone" bson:"phone"`
}
