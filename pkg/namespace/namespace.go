// Package namespace generates random namespace names for launched networks.
package namespace

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

// Size is the number of random bytes in a namespace.
const Size = 16

// Generate returns Size random bytes as lowercase hex.
func Generate() (string, error) {
	buf := make([]byte, Size)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}
	return hex.EncodeToString(buf), nil
}
