package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"snapshare/internal/application/usecase"
	"snapshare/internal/infrastructure/cache"
	"snapshare/internal/infrastructure/cloudinary"
	"snapshare/internal/infrastructure/database"
	"snapshare/internal/infrastructure/s3"
	"snapshare/internal/infrastructure/sheets"
	"snapshare/pkg/logger"
)

const (
	ProviderCloudinary = "cloudinary"
	ProviderS3         = "s3"
)

type ServerConfig struct {
	Address      string   `yaml:"address"`
	AllowOrigins []string `yaml:"allow_origins"`
	BodyLimit    string   `yaml:"body_limit"`
	MaxFileSize  int64    `yaml:"max_file_size_bytes"`
	RateLimit    int      `yaml:"rate_limit"`
}

type MediaStoreConfig struct {
	// Provider selects the media-store adapter: "cloudinary" or "s3".
	// Empty means unconfigured; uploads then run in development mode.
	Provider string `yaml:"provider"`
}

// Config represents the configs used by services on system.
type Config struct {
	Environment string                `yaml:"environment"`
	Server      ServerConfig          `yaml:"server"`
	MediaStore  MediaStoreConfig      `yaml:"media_store"`
	Cloudinary  cloudinary.Config     `yaml:"cloudinary"`
	S3          s3.Config             `yaml:"s3"`
	Upload      usecase.UploadConfig  `yaml:"upload"`
	Listing     usecase.ListingConfig `yaml:"listing"`
	DBConfig    database.Config       `yaml:"db_config"`
	Sheets      sheets.Config         `yaml:"sheets"`
	Cache       cache.Config          `yaml:"listing_cache"`
	Logger      logger.Config         `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.Cloudinary.CloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	config.Cloudinary.APIKey = os.Getenv("CLOUDINARY_API_KEY")
	config.Cloudinary.APISecret = os.Getenv("CLOUDINARY_API_SECRET")

	config.S3.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	config.S3.SecretKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	if bucket := os.Getenv("AWS_S3_BUCKET_NAME"); bucket != "" {
		config.S3.Bucket = bucket
	}

	if folder := os.Getenv("UPLOAD_FOLDER"); folder != "" {
		config.Upload.Folder = folder
		config.Listing.Folder = folder
	}

	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.Sheets.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	config.Sheets.CredentialsJSON = os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")
	config.Cache.URI = os.Getenv("REDIS_URI")

	config.setDefaults()

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

func (c *Config) setDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = []string{"*"}
	}
	if c.Server.BodyLimit == "" {
		c.Server.BodyLimit = "50M"
	}
	if c.Server.MaxFileSize == 0 {
		c.Server.MaxFileSize = 10 << 20
	}
	if c.Server.RateLimit == 0 {
		c.Server.RateLimit = 20
	}

	if c.Upload.Folder == "" {
		c.Upload.Folder = "wedding-photos"
	}
	if c.Upload.Timeout == 0 {
		c.Upload.Timeout = 30000
	}
	if c.Upload.MaxConcurrent == 0 {
		c.Upload.MaxConcurrent = 4
	}

	if c.Listing.Folder == "" {
		c.Listing.Folder = c.Upload.Folder
	}
	if len(c.Listing.FallbackTags) == 0 {
		c.Listing.FallbackTags = []string{"wedding", "guest-upload"}
	}
	if len(c.Listing.LegacyFolders) == 0 {
		c.Listing.LegacyFolders = []string{"KellysWedding", "wedding-photos", "wedding", "photos"}
	}
	if c.Listing.DefaultLimit == 0 {
		c.Listing.DefaultLimit = 20
	}
	if c.Listing.MaxLimit == 0 {
		c.Listing.MaxLimit = 100
	}

	if c.Cloudinary.Timeout == 0 {
		c.Cloudinary.Timeout = 30000
	}
	if c.S3.Timeout == 0 {
		c.S3.Timeout = 30000
	}

	if c.Sheets.Range == "" {
		c.Sheets.Range = "Sheet1!A:Y"
	}
	if c.Sheets.Timeout == 0 {
		c.Sheets.Timeout = 10000
	}

	if c.Cache.TTL == 0 {
		c.Cache.TTL = 10000
	}

	if c.DBConfig.DBName == "" {
		c.DBConfig.DBName = "snapshare"
	}
	if c.DBConfig.ConnectionTimeout == 0 {
		c.DBConfig.ConnectionTimeout = 10000
	}
	if c.DBConfig.QueryTimeout == 0 {
		c.DBConfig.QueryTimeout = 5000
	}
}

// basicCheck validates the basic stuff in config. A partial credential
// set is a startup error: the degraded development mode is only for a
// fully absent store, never a silent downgrade.
func (c *Config) basicCheck() error {
	switch c.MediaStore.Provider {
	case "", ProviderCloudinary, ProviderS3:
	default:
		return fmt.Errorf("unknown media store provider: %q", c.MediaStore.Provider)
	}

	if c.Cloudinary.PartiallyConfigured() {
		return errors.New("partial cloudinary credentials: set all of CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET or none")
	}
	if c.S3.PartiallyConfigured() {
		return errors.New("partial s3 configuration: set credentials, endpoint and bucket or none")
	}

	// Credentials in the environment with no provider selected must not
	// slide into the simulated-upload mode.
	if c.MediaStore.Provider == "" && (c.Cloudinary.Configured() || c.S3.Configured()) {
		return errors.New("credentials are set but media_store.provider is empty: select \"cloudinary\" or \"s3\"")
	}
	if c.Sheets.PartiallyConfigured() {
		return errors.New("partial sheets configuration: set both GOOGLE_SHEETS_SPREADSHEET_ID and GOOGLE_SERVICE_ACCOUNT_JSON or neither")
	}

	return nil
}
