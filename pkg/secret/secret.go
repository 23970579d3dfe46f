package secret

import (
	"context"
	"strings"
)

// Prefix marks a configuration value holding base64 encoded ciphertext.
const Prefix = "kms:"

type Decrypter interface {
	Decrypt(ctx context.Context, ciphertext string) (string, error)
}

func IsEncrypted(value string) bool {
	return strings.HasPrefix(value, Prefix)
}

// Resolve returns value unchanged unless it carries the encryption prefix,
// in which case the remainder is decrypted.
func Resolve(ctx context.Context, d Decrypter, value string) (string, error) {
	if !IsEncrypted(value) {
		return value, nil
	}

	return d.Decrypt(ctx, strings.TrimPrefix(value, Prefix))
}
