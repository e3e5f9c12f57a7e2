// Package domain contains the payloads and errors of the authentication forms.
package domain

// Credentials is the payload of a sign in submission
type Credentials struct {
	Email    string
	Password string
	Remember bool
}

// Registration is the payload of a sign up submission
type Registration struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	AcceptTerms bool
}

// FullName joins first and last name
func (r Registration) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	default:
		return r.FirstName + " " + r.LastName
	}
}
