package auth

// TokenManager abstracts token issuance and verification.
type TokenManager interface {
	// Generate issues a signed token whose subject is userID.
	Generate(userID string) (string, error)
	// Validate checks signature and expiry and returns the subject.
	Validate(token string) (string, error)
}

// PasswordHasher hides the password hashing algorithm from the use cases.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)
	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
