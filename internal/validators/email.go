package validators

import (
	"context"
	"errors"
	"net"
	"strings"
)

var (
	ErrEmailMalformed    = errors.New("email has no domain")
	ErrEmailDomainNoHost = errors.New("email domain does not resolve")
)

// Resolver is the subset of *net.Resolver used for domain checks.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// CheckEmailDomain accepts an address whose domain has an MX record or,
// failing that, any host address.
func CheckEmailDomain(ctx context.Context, r Resolver, email string) error {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return ErrEmailMalformed
	}
	domain := email[at+1:]

	if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return nil
	}
	if hosts, err := r.LookupHost(ctx, domain); err == nil && len(hosts) > 0 {
		return nil
	}
	return ErrEmailDomainNoHost
}
