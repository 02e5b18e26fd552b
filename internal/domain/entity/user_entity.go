package entity

// User is the aggregate root of the auth context.
//
// A User built by CreateUser carries the plaintext password until it has
// been persisted. A User rebuilt from storage never has one: after
// authentication nothing in the domain needs it.
type User struct {
	id       UserID
	name     UserName
	email    UserEmail
	password *UserPassword
	roles    []UserRole
}

// UserPrimitives is the flat form of a User used by adapters.
type UserPrimitives struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// CreateUser registers a new user with a freshly generated id.
func CreateUser(name UserName, email UserEmail, password UserPassword, roles []UserRole) (*User, error) {
	u := &User{
		id:       GenerateUserID(),
		name:     name,
		email:    email,
		password: &password,
	}
	if err := u.setRoles(roles); err != nil {
		return nil, err
	}
	return u, nil
}

// UserFromPrimitives rebuilds a user read from trusted storage. Every value
// is validated again; the password is left absent.
func UserFromPrimitives(id, name, email string, roles []string) (*User, error) {
	uid, err := ParseUserID(id)
	if err != nil {
		return nil, err
	}
	n, err := NewUserName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewUserEmail(email)
	if err != nil {
		return nil, err
	}
	parsed := make([]UserRole, 0, len(roles))
	for _, raw := range roles {
		r, err := NewUserRole(raw)
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, r)
	}

	u := &User{id: uid, name: n, email: e}
	if err := u.setRoles(parsed); err != nil {
		return nil, err
	}
	return u, nil
}

func (u *User) setRoles(roles []UserRole) error {
	if len(roles) == 0 {
		return ErrEmptyRoles
	}
	u.roles = make([]UserRole, 0, len(roles))
	for _, r := range roles {
		if r.value == "" {
			return ErrEmptyRole
		}
		if !u.HasRole(r) {
			u.roles = append(u.roles, r)
		}
	}
	return nil
}

func (u *User) ID() UserID       { return u.id }
func (u *User) Name() UserName   { return u.name }
func (u *User) Email() UserEmail { return u.email }

// Password returns the plaintext password and whether one is known.
func (u *User) Password() (UserPassword, bool) {
	if u.password == nil {
		return UserPassword{}, false
	}
	return *u.password, true
}

// Roles returns a copy of the role set.
func (u *User) Roles() []UserRole {
	out := make([]UserRole, len(u.roles))
	copy(out, u.roles)
	return out
}

func (u *User) RoleValues() []string {
	out := make([]string, 0, len(u.roles))
	for _, r := range u.roles {
		out = append(out, r.value)
	}
	return out
}

func (u *User) HasRole(role UserRole) bool {
	for _, r := range u.roles {
		if r.Equals(role) {
			return true
		}
	}
	return false
}

func (u *User) HasAnyRole(roles ...UserRole) bool {
	for _, r := range roles {
		if u.HasRole(r) {
			return true
		}
	}
	return false
}

// AddRole is a no-op when the role is already held.
func (u *User) AddRole(role UserRole) error {
	if role.value == "" {
		return ErrEmptyRole
	}
	if !u.HasRole(role) {
		u.roles = append(u.roles, role)
	}
	return nil
}

// RemoveRole drops role from the set. The set may never become empty, so
// removing the only remaining role fails with ErrEmptyRoles.
func (u *User) RemoveRole(role UserRole) error {
	kept := make([]UserRole, 0, len(u.roles))
	for _, r := range u.roles {
		if !r.Equals(role) {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return ErrEmptyRoles
	}
	u.roles = kept
	return nil
}

func (u *User) IsClient() bool   { return u.HasRole(RoleClient()) }
func (u *User) IsFollower() bool { return u.HasRole(RoleFollower()) }
func (u *User) IsAdmin() bool    { return u.HasRole(RoleAdmin()) }

// ToPrimitives never includes the password.
func (u *User) ToPrimitives() UserPrimitives {
	return UserPrimitives{
		ID:    u.id.value,
		Name:  u.name.value,
		Email: u.email.value,
		Roles: u.RoleValues(),
	}
}
