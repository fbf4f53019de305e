package model

// People is a public profile shown in the people listing
type People struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Avatar    string `json:"avatar"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook,omitempty"`
}
