package httpadapter

import (
	"fmt"
	"net/http"
	"net/netip"
	"strings"

	"growth-agent/internal/core/domain"
)

const (
	sessionCookie = "sessionid"
	sessionHeader = "X-Session-Key"
)

// callerFrom identifies the requester. The address comes from RemoteAddr,
// which RealIP rewrites when the proxy is trusted.
func callerFrom(r *http.Request) (domain.Caller, error) {
	c := domain.Caller{UserID: userFrom(r.Context())}

	addr, err := parseRemoteAddr(r.RemoteAddr)
	if err != nil {
		if c.Authenticated() {
			return c, nil
		}
		return domain.Caller{}, err
	}
	c.IP = addr

	if cookie, err := r.Cookie(sessionCookie); err == nil {
		c.SessionKey = cookie.Value
	}
	if c.SessionKey == "" {
		c.SessionKey = strings.TrimSpace(r.Header.Get(sessionHeader))
	}
	return c, nil
}

func parseRemoteAddr(remote string) (netip.Addr, error) {
	if ap, err := netip.ParseAddrPort(remote); err == nil {
		return ap.Addr().Unmap(), nil
	}
	addr, err := netip.ParseAddr(strings.Trim(remote, "[]"))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("unparseable client address %q", remote)
	}
	return addr.Unmap(), nil
}
