package configs

// S3 configures the object storage that holds campaign images. Uploads are
// disabled when Bucket is empty.
type S3 struct {
	Endpoint string `env:"ENDPOINT"`
	// PublicEndpoint is the base URL returned to clients; it defaults to Endpoint.
	PublicEndpoint string `env:"PUBLIC_ENDPOINT"`
	Region         string `env:"REGION" envDefault:"us-east-1"`
	AccessKey      string `env:"ACCESS_KEY"`
	SecretKey      string `env:"SECRET_KEY"`
	Bucket         string `env:"BUCKET"`
	SSLDisabled    bool   `env:"SSL_DISABLED" envDefault:"false"`
	MaxImageBytes  int    `env:"MAX_IMAGE_BYTES" envDefault:"5242880"`
}

func (c S3) Enabled() bool {
	return c.Bucket != ""
}
