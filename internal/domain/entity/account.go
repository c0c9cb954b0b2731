// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Account is the core entity in the system, representing a registered user.
//
// CredentialHash is only ever written through the credential-setting path and
// is excluded from every serialized representation; the json tag is a second
// line of defense should an Account ever reach an encoder directly.
type Account struct {
	ID             uuid.UUID // Unique identifier, generated by the storage layer at creation.
	Email          string    // Login identifier; unique among non-deleted accounts.
	FirstName      string    // Optional display name, always stored in normalized form.
	LastName       string    // Optional display name, always stored in normalized form.
	CredentialHash string    `json:"-"` // bcrypt hash of the account password. Never the plaintext.
	CreatedAt      time.Time // Timestamp of when this account was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// NormalizeName standardizes a display-name field: the first rune is
// upper-cased and the remainder lower-cased. The transform applies to the
// whole string rather than per word, and is idempotent. An empty string
// normalizes to an empty string.
func NormalizeName(raw string) string {
	if raw == "" {
		return ""
	}

	first, size := utf8.DecodeRuneInString(raw)

	return string(unicode.ToUpper(first)) + strings.ToLower(raw[size:])
}

// SetFirstName writes the first name through the normalization pipeline.
func (a *Account) SetFirstName(raw string) {
	a.FirstName = NormalizeName(raw)
}

// SetLastName writes the last name through the normalization pipeline.
func (a *Account) SetLastName(raw string) {
	a.LastName = NormalizeName(raw)
}

// SetCredentialHash stores an already-hashed credential. Callers must derive
// the hash through a service.PasswordHasher; plaintext passwords never land on
// the entity.
func (a *Account) SetCredentialHash(hash string) {
	a.CredentialHash = hash
}
