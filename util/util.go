package util

import (
	"crypto/rand"
	"fmt"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"
)

const (
	codeLength  = 6
	codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenCode returns a random URL-safe short code candidate. Uniqueness
// is not guaranteed here; the links table's unique constraint is the
// arbiter and a collision surfaces as the duplicate-code error.
func GenCode() string {
	buf := make([]byte, codeLength)
	rand.Read(buf)

	code := make([]byte, codeLength)
	for i := 0; i < codeLength; i++ {
		code[i] = codeCharset[buf[i]%byte(len(codeCharset))]
	}

	return string(code)
}

func GenUUID() string {
	return shortuuid.New()
}

// GenFileKey names one exported report object.
func GenFileKey() string {
	return fmt.Sprintf("links-report-%s.csv", uuid.NewString())
}
