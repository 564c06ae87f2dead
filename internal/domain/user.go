package domain

// User is an account record as returned by whichever user endpoint answered.
// Optional fields are nil when the upstream omitted them or sent null.
type User struct {
	ID        string
	Name      *string
	Email     *string
	Phone     *string
	CreatedAt *string
	Status    *string
	Extra     Extra
}

func (u *User) UnmarshalJSON(data []byte) error {
	f, err := splitFields(data)
	if err != nil {
		return err
	}

	var user User
	if user.ID, err = f.id("id", "_id", "userId", "clientId"); err != nil {
		return err
	}
	user.Name = f.text("name")
	user.Email = f.text("email")
	user.Phone = f.text("phone")
	user.CreatedAt = f.text("createdAt")
	user.Status = f.text("status")
	user.Extra = f.extra()

	*u = user
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	known := map[string]any{"id": u.ID}
	setOptional(known, "name", u.Name)
	setOptional(known, "email", u.Email)
	setOptional(known, "phone", u.Phone)
	setOptional(known, "createdAt", u.CreatedAt)
	setOptional(known, "status", u.Status)
	return marshalRecord(u.Extra, known)
}

func (u User) SearchFields() (name, email, phone *string) {
	return u.Name, u.Email, u.Phone
}

func setOptional(m map[string]any, key string, value *string) {
	if value != nil {
		m[key] = *value
	}
}
