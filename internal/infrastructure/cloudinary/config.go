package cloudinary

// Config holds the Cloudinary credentials. All three values come from
// the environment, never from the config file.
type Config struct {
	CloudName string
	APIKey    string
	APISecret string
	Timeout   int64 `yaml:"timeout_in_ms"`
}

// Configured reports whether the full credential set is present.
func (c *Config) Configured() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// PartiallyConfigured reports whether some but not all credentials are
// present. That state is a startup error, never a silent downgrade.
func (c *Config) PartiallyConfigured() bool {
	some := c.CloudName != "" || c.APIKey != "" || c.APISecret != ""

	return some && !c.Configured()
}
