package model

type User struct {
	ID             int64  `json:"id" yaml:"id"`
	FirstName      string `json:"first_name" yaml:"first_name"`
	LastName       string `json:"last_name" yaml:"last_name"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Specialization string `json:"specialization,omitempty" yaml:"specialization,omitempty"`
	Activity       string `json:"activity,omitempty" yaml:"activity,omitempty"`
}

// Public returns the listing view of a user: identity and name only.
// Profile details travel only on session and candidate payloads.
func (u User) Public() User {
	return User{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
