package structs

// User is exchanged verbatim with the backend. Password stays blank on
// reads; omitempty drops it from an update payload when no new password
// was entered.
type User struct {
	Id          int64  `json:"id,omitempty"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	Role        string `json:"role"`
}

// UserDraft is the in-progress form record. Existing marks an edit of a
// stored user, which relaxes the password rule.
type UserDraft struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email_format"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_format"`
	Username    string `json:"username" validate:"required,min=3,max=50"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Existing    bool   `json:"-"`
}

// Record maps the draft onto the wire shape.
func (d UserDraft) Record() User {
	return User{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Username:    d.Username,
		Password:    d.Password,
		Role:        d.Role,
	}
}
