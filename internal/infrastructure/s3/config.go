package s3

// Config holds the S3-compatible store settings. Credentials come from
// the environment; endpoint and bucket may live in the config file.
type Config struct {
	AccessKey     string
	SecretKey     string
	Endpoint      string `yaml:"endpoint"`
	Bucket        string `yaml:"bucket"`
	Region        string `yaml:"region"`
	UseSSL        bool   `yaml:"use_ssl"`
	PublicBaseURL string `yaml:"public_base_url"`
	Timeout       int64  `yaml:"timeout_in_ms"`
}

func (c *Config) Configured() bool {
	return c.AccessKey != "" && c.SecretKey != "" && c.Endpoint != "" && c.Bucket != ""
}

func (c *Config) PartiallyConfigured() bool {
	some := c.AccessKey != "" || c.SecretKey != "" || c.Endpoint != "" || c.Bucket != ""

	return some && !c.Configured()
}
