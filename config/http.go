package config

// HTTPConfig configures the API server.
type HTTPConfig struct {
	Address string `json:"address"`
	// Token, when set, is required as a bearer token on /api routes.
	Token string `json:"token"`
}

// SetDefaults applies the default listen address.
func (c *HTTPConfig) SetDefaults() {
	if c.Address == "" {
		c.Address = ":8080"
	}
}
