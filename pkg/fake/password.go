package fake

import "golang.org/x/crypto/bcrypt"

// PasswordHash returns a bcrypt hash of plain at the minimum cost, which is
// what fixtures want: verifiable with bcrypt.CompareHashAndPassword yet cheap
// enough for large batches. Input longer than bcrypt's 72-byte limit is
// truncated before hashing.
func PasswordHash(plain string) string {
	b := []byte(plain)
	if len(b) > 72 {
		b = b[:72]
	}
	hash, err := bcrypt.GenerateFromPassword(b, bcrypt.MinCost)
	if err != nil {
		return ""
	}
	return string(hash)
}
