package netaddr

import (
	"context"
	"fmt"
	"net"
	"time"
)

const dialTimeout = 3 * time.Second

// LocalIP returns the local address the host would use to reach probeAddr.
// Dialing UDP only binds a socket and picks a route; no packet is sent.
func LocalIP(ctx context.Context, probeAddr string) (string, error) {
	d := net.Dialer{Timeout: dialTimeout}
	conn, err := d.DialContext(ctx, "udp", probeAddr)
	if err != nil {
		return "", fmt.Errorf("failed to probe %s: %w", probeAddr, err)
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}
	return addr.IP.String(), nil
}

// BindHost resolves the host the server listens on. A configured host wins.
// Otherwise the discovered IP is used, and on discovery failure the error
// text itself becomes the host so the subsequent bind fails loudly.
func BindHost(ctx context.Context, configured, probeAddr string) (host string, discoverErr error) {
	if configured != "" {
		return configured, nil
	}
	ip, err := LocalIP(ctx, probeAddr)
	if err != nil {
		return err.Error(), err
	}
	return ip, nil
}
