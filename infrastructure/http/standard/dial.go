// ABOUTME: Dial guard that keeps outbound requests off private and loopback addresses
// ABOUTME: Resolves the host once and dials the vetted IP directly

package standard

import (
	"context"
	"fmt"
	"net"
)

var privateIPBlocks []*net.IPNet

func init() {
	for _, cidr := range []string{
		"0.0.0.0/8",
		"127.0.0.0/8",
		"10.0.0.0/8",
		"172.16.0.0/12",
		"192.168.0.0/16",
		"100.64.0.0/10",
		"169.254.0.0/16",
		"::/128",
		"::1/128",
		"fe80::/10",
		"fc00::/7",
	} {
		_, block, err := net.ParseCIDR(cidr)
		if err != nil {
			panic(fmt.Errorf("parse error on %q: %v", cidr, err))
		}
		privateIPBlocks = append(privateIPBlocks, block)
	}
}

func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
		return true
	}
	for _, block := range privateIPBlocks {
		if block.Contains(ip) {
			return true
		}
	}
	return false
}

// safeDialContext wraps dialer so connections to private addresses fail
func safeDialContext(dialer *net.Dialer) func(context.Context, string, string) (net.Conn, error) {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return nil, err
		}

		addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
		if err != nil {
			return nil, err
		}

		var safeIP net.IP
		for _, a := range addrs {
			if !isPrivateIP(a.IP) {
				safeIP = a.IP
				break
			}
		}
		if safeIP == nil {
			return nil, fmt.Errorf("blocked connection to private address for %s", host)
		}

		// TLS still verifies against the original hostname via the request
		return dialer.DialContext(ctx, network, net.JoinHostPort(safeIP.String(), port))
	}
}
