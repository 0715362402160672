package services

import (
	"fmt"

	portssvc "github.com/fincontrol/fincontrol_backend/internal/core/ports/services"
	"golang.org/x/crypto/bcrypt"
)

// Password storage modes selectable via config.
const (
	PasswordModePlain  = "plain"
	PasswordModeBcrypt = "bcrypt"
)

// PlainTextVerifier stores and compares passwords verbatim. This preserves
// the demo-grade behavior of the original dashboard and is the default so the
// documented seed credentials keep working. Not production auth.
type PlainTextVerifier struct{}

func (PlainTextVerifier) Prepare(password string) (string, error) {
	return password, nil
}

func (PlainTextVerifier) Verify(password, stored string) bool {
	return password == stored
}

// BcryptVerifier stores bcrypt hashes and compares against them. Swapping it
// in changes nothing else in the store contract.
type BcryptVerifier struct{}

func (BcryptVerifier) Prepare(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (BcryptVerifier) Verify(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// NewCredentialVerifier selects the verifier for the configured password
// mode, defaulting to plaintext for unknown values.
func NewCredentialVerifier(mode string) portssvc.CredentialVerifier {
	if mode == PasswordModeBcrypt {
		return BcryptVerifier{}
	}
	return PlainTextVerifier{}
}

var (
	_ portssvc.CredentialVerifier = PlainTextVerifier{}
	_ portssvc.CredentialVerifier = BcryptVerifier{}
)
