package models

// User is a template schema with no endpoints. Collection: "user".
type User struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Address  string `json:"address" binding:"required"`
	Age      *int   `json:"age" binding:"omitnil,min=0,max=120"`
	IsActive *bool  `json:"is_active"`
}

func (User) Kind() Kind { return KindUser }

func (u User) WithDefaults() User {
	if u.IsActive == nil {
		active := true
		u.IsActive = &active
	}
	return u
}

func ParseUser(raw map[string]any) (User, error) {
	var u User
	if err := decode(raw, &u); err != nil {
		return User{}, err
	}
	u = u.WithDefaults()
	if err := Validate(&u); err != nil {
		return User{}, err
	}
	return u, nil
}
