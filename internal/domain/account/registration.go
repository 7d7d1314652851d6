package account

// Registration is a validated sign-up request. Building one never touches
// the store, so every shape error surfaces before any write.
type Registration struct {
	role        Role
	name        Name
	email       Email
	phone       Phone
	password    Password
	description *string
}

type RegistrationInput struct {
	Role            string
	Name            string
	Email           string
	PhoneNumber     string
	Password        string
	ConfirmPassword string
	Description     *string
}

func NewRegistration(in RegistrationInput) (*Registration, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	role, err := NewRole(in.Role)
	if err != nil {
		return nil, err
	}
	if !role.CanRegister() {
		return nil, ErrInvalidRole
	}

	name, err := NewName(in.Name)
	if err != nil {
		return nil, err
	}

	email, err := NewEmail(in.Email)
	if err != nil {
		return nil, err
	}

	phone, err := NewPhone(in.PhoneNumber)
	if err != nil {
		return nil, err
	}

	password, err := NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	var description *string
	if role == RoleVendor {
		description = in.Description
	}

	return &Registration{
		role:        role,
		name:        name,
		email:       email,
		phone:       phone,
		password:    password,
		description: description,
	}, nil
}

func (r *Registration) Role() Role           { return r.role }
func (r *Registration) Name() Name           { return r.name }
func (r *Registration) Email() Email         { return r.email }
func (r *Registration) Phone() Phone         { return r.phone }
func (r *Registration) Password() Password   { return r.password }
func (r *Registration) Description() *string { return r.description }

type Credentials struct {
	role     Role
	email    Email
	password Password
}

func NewCredentials(roleStr, emailStr, passwordStr string) (Credentials, error) {
	role, err := NewRole(roleStr)
	if err != nil {
		return Credentials{}, err
	}
	if !role.CanRegister() {
		return Credentials{}, ErrInvalidRole
	}

	email, err := NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		role:     role,
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Role() Role         { return c.role }
func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
