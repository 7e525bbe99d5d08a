package domain

// User is one record of the user service.
// Password is stored and returned as-is; the toy fleet does no hashing.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUpdate carries the optional fields of a user update command; nil means
// "leave unchanged". At least one field must be set.
type UserUpdate struct {
	Username *string
	Email    *string
	Password *string
}

// Empty reports whether no field is set.
func (u UserUpdate) Empty() bool {
	return u.Username == nil && u.Email == nil && u.Password == nil
}
