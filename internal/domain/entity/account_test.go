package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "lowercase", raw: "john", want: "John"},
		{name: "uppercase", raw: "JOHN", want: "John"},
		{name: "mixed case", raw: "jOhN", want: "John"},
		{name: "already normalized", raw: "John", want: "John"},
		{name: "empty", raw: "", want: ""},
		{name: "single rune", raw: "j", want: "J"},
		{name: "whole string not per word", raw: "mary ann", want: "Mary ann"},
		{name: "hyphenated", raw: "SMITH-JONES", want: "Smith-jones"},
		{name: "multibyte first rune", raw: "éloise", want: "Éloise"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeName(tt.raw))
		})
	}
}

func TestNormalizeName_Idempotent(t *testing.T) {
	inputs := []string{"john", "JOHN", "mary ann", "éloise", ""}

	for _, raw := range inputs {
		once := NormalizeName(raw)
		twice := NormalizeName(once)
		assert.Equal(t, once, twice, "normalizing %q twice changed the result", raw)
	}
}

func TestAccount_SettersNormalize(t *testing.T) {
	account := &Account{}

	account.SetFirstName("aLICE")
	account.SetLastName("o'BRIEN")

	assert.Equal(t, "Alice", account.FirstName)
	assert.Equal(t, "O'brien", account.LastName)
}

func TestAccount_CredentialHashNeverMarshalled(t *testing.T) {
	account := &Account{
		Email:          "test@example.com",
		CredentialHash: "$2a$12$secret",
	}

	data, err := json.Marshal(account)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}
