package domain

import (
	"net/netip"
	"time"
)

// UsageRecord is one admitted free-tier generation. Records are written at
// admission time and never mutated.
type UsageRecord struct {
	ID         string
	IPAddress  netip.Addr
	SessionKey string
	CreatedAt  time.Time
}

// Caller identifies who is asking for a generation. An authenticated caller
// has a UserID; anonymous callers are identified by IP and session key.
type Caller struct {
	UserID     string
	IP         netip.Addr
	SessionKey string
}

// Authenticated reports whether the caller presented a verified identity.
func (c Caller) Authenticated() bool {
	return c.UserID != ""
}
