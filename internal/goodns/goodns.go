// Package goodns resolves A records against a fixed nameserver, bypassing
// the system resolver cache. Redis sentinels behind a headless DNS name are
// discovered this way so that every sentinel address is returned.
package goodns

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/miekg/dns"
)

const (
	defaultPort       = 53
	defaultResolvConf = "/etc/resolv.conf"
)

var ErrNoRecords = errors.New("no A records")

// Resolver queries one nameserver. No fallback, no retry.
type Resolver struct {
	// Server is host or host:port; empty means the first resolv.conf nameserver.
	Server string
	UseTCP bool
}

// LookupA queries the first nameserver in /etc/resolv.conf.
func LookupA(ctx context.Context, domain string, useTCP bool) ([]net.IP, error) {
	return (&Resolver{UseTCP: useTCP}).LookupA(ctx, domain)
}

// LookupAWithServer queries dnsServer on port 53.
func LookupAWithServer(ctx context.Context, domain string, dnsServer string, useTCP bool) ([]net.IP, error) {
	return (&Resolver{Server: dnsServer, UseTCP: useTCP}).LookupA(ctx, domain)
}

func (r *Resolver) server() (string, error) {
	if r.Server != "" {
		if _, _, err := net.SplitHostPort(r.Server); err == nil {
			return r.Server, nil
		}
		return net.JoinHostPort(r.Server, strconv.Itoa(defaultPort)), nil
	}
	conf, err := dns.ClientConfigFromFile(defaultResolvConf)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", defaultResolvConf, err)
	}
	if len(conf.Servers) == 0 {
		return "", fmt.Errorf("no nameserver in %s", defaultResolvConf)
	}
	port := conf.Port
	if port == "" {
		port = strconv.Itoa(defaultPort)
	}
	return net.JoinHostPort(conf.Servers[0], port), nil
}

// LookupA returns the distinct IPv4 addresses domain resolves to.
func (r *Resolver) LookupA(ctx context.Context, domain string) ([]net.IP, error) {
	server, err := r.server()
	if err != nil {
		return nil, err
	}

	c := new(dns.Client)
	if r.UseTCP {
		c.Net = "tcp"
	}
	req := new(dns.Msg)
	req.SetQuestion(dns.Fqdn(domain), dns.TypeA)
	req.RecursionDesired = true

	resp, _, err := c.ExchangeContext(ctx, req, server)
	if err != nil {
		return nil, fmt.Errorf("dns query %s via %s: %w", domain, server, err)
	}
	if resp == nil {
		return nil, errors.New("unexpected empty dns response")
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("dns query %s: %s", domain, dns.RcodeToString[resp.Rcode])
	}

	seen := make(map[string]struct{}, len(resp.Answer))
	ips := make([]net.IP, 0, len(resp.Answer))
	for _, rr := range resp.Answer {
		a, ok := rr.(*dns.A)
		if !ok {
			continue
		}
		if _, dup := seen[a.A.String()]; dup {
			continue
		}
		seen[a.A.String()] = struct{}{}
		ips = append(ips, a.A)
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoRecords, domain)
	}
	return ips, nil
}
