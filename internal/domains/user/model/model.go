package model

import "time"

const (
	CollectionName = "users"
	EntityName     = "user"

	FieldUsername  = "_id"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldCreatedAt = "created_at"
	FieldLastLogin = "last_login"
)

// User is a stored credential record. The username doubles as the document
// key, which is what enforces its uniqueness.
type User struct {
	Username  string     `bson:"_id"                  json:"username"`
	Password  string     `bson:"password"             json:"-"`
	Role      string     `bson:"role"                 json:"role"`
	CreatedAt time.Time  `bson:"created_at"           json:"created_at"`
	LastLogin *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}
