// Package endpoint turns the user-facing target string (the WIILOAD
// format, e.g. tcp:192.168.1.106 or tcp:wii.lan:4299) into a dialable
// host:port pair.
package endpoint

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/miekg/dns"

	"github.com/sensepost/wiiload/protocol"
)

// Prefix is the transport marker every endpoint string must carry.
const Prefix = "tcp:"

// ErrBadEndpoint is returned for endpoint strings that cannot be turned
// into a connection target.
var ErrBadEndpoint = errors.New("endpoint: invalid target")

// Endpoint is a parsed transfer target.
type Endpoint struct {
	Host string
	Port int
}

// Parse validates the transport prefix and splits the remainder into
// host and port. The port defaults to the well-known wiiload port when
// the string carries none.
func Parse(raw string) (Endpoint, error) {
	if !strings.HasPrefix(raw, Prefix) {
		return Endpoint{}, fmt.Errorf("%w: %q does not start with %q", ErrBadEndpoint, raw, Prefix)
	}

	rest := strings.TrimPrefix(raw, Prefix)
	if rest == "" {
		return Endpoint{}, fmt.Errorf("%w: %q has no host", ErrBadEndpoint, raw)
	}

	host, port := rest, protocol.Port
	if h, p, err := net.SplitHostPort(rest); err == nil {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return Endpoint{}, fmt.Errorf("%w: bad port %q in %q", ErrBadEndpoint, p, raw)
		}
		if h == "" {
			return Endpoint{}, fmt.Errorf("%w: %q has no host", ErrBadEndpoint, raw)
		}
		host, port = h, n
	}

	return Endpoint{Host: host, Port: port}, nil
}

// Addr returns the host:port dial target. IP literals pass straight
// through; a hostname is resolved to its first A record using the
// system's configured nameservers.
func (e Endpoint) Addr() (string, error) {
	port := strconv.Itoa(e.Port)

	if net.ParseIP(e.Host) != nil {
		return net.JoinHostPort(e.Host, port), nil
	}

	ip, err := resolveA(e.Host)
	if err != nil {
		return "", fmt.Errorf("%w: resolving %q: %v", ErrBadEndpoint, e.Host, err)
	}

	return net.JoinHostPort(ip, port), nil
}

// resolveA asks each configured nameserver in turn for an A record.
func resolveA(host string) (string, error) {
	conf, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil {
		return "", err
	}

	client := new(dns.Client)
	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), dns.TypeA)

	for _, server := range conf.Servers {
		in, _, err := client.Exchange(msg, net.JoinHostPort(server, conf.Port))
		if err != nil {
			continue
		}
		for _, rr := range in.Answer {
			if a, ok := rr.(*dns.A); ok {
				return a.A.String(), nil
			}
		}
	}

	return "", fmt.Errorf("no A record for %q", host)
}
