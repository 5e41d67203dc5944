package configs

import (
	"strings"
	"time"
)

// FreeTier configures the anonymous usage allowance.
type FreeTier struct {
	Limit  int           `env:"LIMIT"  envDefault:"2"`
	Window time.Duration `env:"WINDOW" envDefault:"24h"`
	// Store is "postgres" (default) or "redis".
	Store string `env:"STORE" envDefault:"postgres"`
}

// StoreKind returns the normalised store name.
func (c FreeTier) StoreKind() string {
	return strings.ToLower(strings.TrimSpace(c.Store))
}
