package ports

// AdminAuthorizer checks the pre-shared admin credential.
type AdminAuthorizer interface {
	// Authorize returns domain.ErrUnauthorized unless key is the admin key.
	Authorize(key string) error
}
