// Package crypto holds the one-way password hashing used by the identity
// service. Plaintext passwords never reach the store.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher hashes passwords and checks candidates against stored hashes.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password.
	Hash(password string) (string, error)

	// Compare reports whether password matches hash. It returns
	// [ErrMismatchedPassword] for a wrong password and another error for a
	// malformed hash.
	Compare(hash, password string) error
}
