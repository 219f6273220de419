// Package credentials is the one-way password codec. Hashing is bcrypt with a
// fixed work factor; verification relies on bcrypt's own constant-time
// comparison so mismatch position never leaks through timing.
package credentials

import "golang.org/x/crypto/bcrypt"

// workFactor is the bcrypt cost. Raising it invalidates nothing: the cost is
// embedded in each hash and Verify reads it from there.
const workFactor = 10

// Hash derives a salted one-way hash of plaintext. Output differs between
// calls with the same input; only Verify can check it.
func Hash(plaintext string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), workFactor)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether plaintext matches hashed. Malformed hashed input
// returns false rather than an error: the identity service treats any
// non-match identically.
func Verify(plaintext, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}
