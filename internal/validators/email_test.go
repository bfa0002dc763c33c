package validators

import (
	"testing"
	"time"
)

func TestIsEmailFormatValid(t *testing.T) {
	valid := []string{
		"ada@example.com",
		"first.last@sub.example.co",
		"user+tag@example.org",
	}
	for _, e := range valid {
		if !IsEmailFormatValid(e) {
			t.Errorf("expected %q to be valid", e)
		}
	}

	invalid := []string{
		"",
		"not-an-email",
		"@example.com",
		"user@",
		"Ada Lovelace <ada@example.com>",
		"two@@example.com",
	}
	for _, e := range invalid {
		if IsEmailFormatValid(e) {
			t.Errorf("expected %q to be rejected", e)
		}
	}
}

// Endereços sem domínio caem antes de qualquer consulta DNS; a
// resposta deve ser imediata mesmo sem resolver disponível.
func TestIsEmailDomainValidRejectsMalformedWithoutLookup(t *testing.T) {
	start := time.Now()

	for _, e := range []string{"", "no-at-sign", "user@"} {
		if IsEmailDomainValid(e) {
			t.Errorf("expected %q to be rejected", e)
		}
	}

	if elapsed := time.Since(start); elapsed > lookupTimeout {
		t.Errorf("malformed addresses must not wait on DNS, took %v", elapsed)
	}
}
