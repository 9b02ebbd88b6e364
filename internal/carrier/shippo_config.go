package carrier

import (
	"errors"
	"time"
)

const defaultShippoBaseURL = "https://api.goshippo.com"

// ShippoConfig configures the Shippo REST adapter.
type ShippoConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func (c *ShippoConfig) Validate() error {
	if c.APIKey == "" {
		return errors.New("shippo: API key is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = defaultShippoBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = 30 * time.Second
	}
	return nil
}
