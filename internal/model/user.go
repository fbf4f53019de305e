package model

// User is a registered account
type User struct {
	ID        int64  `json:"id" bson:"_id,omitempty"`
	Username  string `json:"username" bson:"username"`
	Password  string `json:"-" bson:"password"` // bcrypt hash, never serialized
	Email     string `json:"email" bson:"email"`
	Firstname string `json:"firstname" bson:"firstname"`
	Lastname  string `json:"lastname" bson:"lastname"`
	Role      string `json:"role" bson:"role"`
}
