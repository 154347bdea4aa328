package models

// User roles. Every account lives in the collection named after its role.
const (
	RoleCompany   = "company"
	RoleCandidate = "candidate"
)

// User is an account record. Passwords are stored and compared in plaintext;
// hardening the credential store is explicitly out of scope for this service.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
}

// PublicUser is the credential-free view returned by auth endpoints.
type PublicUser struct {
	Email string `json:"email"`
	Type  string `json:"type"`
	Name  string `json:"name"`
}

// ValidRole reports whether role names one of the two account collections.
func ValidRole(role string) bool {
	return role == RoleCompany || role == RoleCandidate
}
