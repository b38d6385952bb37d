package models

// User mirrors the backend 'users' resource. JSON tags follow the backend
// wire format (snake_case).
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Phone     string `json:"phone,omitempty"`
	BirthDate string `json:"birth_date,omitempty"` // YYYY-MM-DD, optional
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// FullName returns "First Last", falling back to the email when both
// name fields are empty.
func (u User) FullName() string {
	switch {
	case u.FirstName == "" && u.LastName == "":
		return u.Email
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
