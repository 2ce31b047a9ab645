package authpage

import "errors"

// ErrNoAuthProvider is returned when an auth consumer is built without a
// provider.
var ErrNoAuthProvider = errors.New("auth consumer must be used inside an auth provider")

// User is the signed-in user.
type User struct {
	Name string `json:"name"`
}

// AuthCapability is what a provider hands to the components below it.
type AuthCapability interface {
	User() *User
	Login(name string)
	Logout()
}

// Provider owns the signed-in user for its subtree.
type Provider struct {
	user *User
}

// NewProvider returns a provider, signed in as user when it is not nil.
func NewProvider(user *User) *Provider {
	p := &Provider{}
	if user != nil {
		p.user = &User{Name: user.Name}
	}
	return p
}

// User returns the signed-in user or nil.
func (p *Provider) User() *User {
	return p.user
}

// Login signs in as name.
func (p *Provider) Login(name string) {
	p.user = &User{Name: name}
}

// Logout signs out.
func (p *Provider) Logout() {
	p.user = nil
}

func missing(capability AuthCapability) bool {
	if capability == nil {
		return true
	}
	p, ok := capability.(*Provider)
	return ok && p == nil
}
