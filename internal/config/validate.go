package config

import (
	"errors"
	"fmt"
)

func (c Config) validate() error {
	var errs []error
	if c.LLM.APIKey == "" {
		errs = append(errs, errors.New("LLM_API_KEY is required"))
	}
	switch c.FreeTier.StoreKind() {
	case "postgres":
	case "redis":
		if c.Redis.Address == "" {
			errs = append(errs, errors.New("REDIS_ADDRESS is required when FREE_TIER_STORE=redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown FREE_TIER_STORE %q", c.FreeTier.Store))
	}
	if c.FreeTier.Limit < 0 {
		errs = append(errs, errors.New("FREE_TIER_LIMIT must not be negative"))
	}
	return errors.Join(errs...)
}
