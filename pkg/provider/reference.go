package provider

import (
	"net"
	"strconv"
	"strings"
)

// DefaultPort is assumed when a provider reference carries no port.
const DefaultPort = 80

// Reference identifies a provider endpoint as host and port.
type Reference struct {
	Host string
	Port int
}

// ParseReference parses a compact "host" or "host:port" provider reference.
// The parse is deliberately permissive: a missing or unparseable port falls
// back to DefaultPort instead of returning an error. A bad host is not
// rejected here; it propagates into the provider URL and fails at the
// provider, not at the consumer.
func ParseReference(ref string) Reference {
	host, port, ok := strings.Cut(ref, ":")
	r := Reference{Host: host, Port: DefaultPort}
	if ok {
		if p, err := strconv.Atoi(port); err == nil && p > 0 && p <= 65535 {
			r.Port = p
		}
	}
	return r
}

// Addr returns the reference as "host:port".
func (r Reference) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

// String implements fmt.Stringer.
func (r Reference) String() string {
	return r.Addr()
}
