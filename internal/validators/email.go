package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
	"time"
)

// Limite do DNS no caminho síncrono da reserva; um resolver lento não
// pode segurar o POST indefinidamente.
const lookupTimeout = 3 * time.Second

func IsEmailFormatValid(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Rejeita a forma "Nome <email>"; o campo deve ser só o endereço.
	return addr.Address == email
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	var resolver net.Resolver

	if mx, err := resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := resolver.LookupIP(ctx, "ip", domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
