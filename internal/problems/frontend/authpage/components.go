package authpage

// Greeting shows who is signed in.
type Greeting struct {
	capability AuthCapability
}

// NewGreeting binds a greeting to capability.
func NewGreeting(capability AuthCapability) (*Greeting, error) {
	if missing(capability) {
		return nil, ErrNoAuthProvider
	}
	return &Greeting{capability: capability}, nil
}

// Text returns the greeting line.
func (g *Greeting) Text() string {
	if user := g.capability.User(); user != nil {
		return "Hi " + user.Name
	}
	return "Please Log In"
}

// AuthForm signs the user in and out.
type AuthForm struct {
	capability AuthCapability
}

// NewAuthForm binds a form to capability.
func NewAuthForm(capability AuthCapability) (*AuthForm, error) {
	if missing(capability) {
		return nil, ErrNoAuthProvider
	}
	return &AuthForm{capability: capability}, nil
}

// Heading returns the form's status line.
func (f *AuthForm) Heading() string {
	if user := f.capability.User(); user != nil {
		return "Hi " + user.Name
	}
	return "Please Log in"
}

// ButtonLabel returns Logout when signed in and Login otherwise.
func (f *AuthForm) ButtonLabel() string {
	if f.capability.User() != nil {
		return "Logout"
	}
	return "Login"
}

// Submit logs out when signed in, or logs in as input when it is not empty.
// It returns the input value to show next.
func (f *AuthForm) Submit(input string) string {
	if f.capability.User() != nil {
		f.capability.Logout()
		return ""
	}
	if input != "" {
		f.capability.Login(input)
	}
	return input
}
