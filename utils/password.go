package utils

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
)

const passwordSaltSize = 60

// NewPasswordSalt returns a random base64 salt, stored next to the hash
func NewPasswordSalt() string {
	b := make([]byte, passwordSaltSize)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return base64.StdEncoding.EncodeToString(b)
}

// HashPassword is the hex SHA-512 of the password followed by its salt
func HashPassword(plainTextPassword, salt string) string {
	sum := sha512.Sum512([]byte(plainTextPassword + salt))
	return hex.EncodeToString(sum[:])
}
