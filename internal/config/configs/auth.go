package configs

// Auth configures verification of bearer tokens issued by the identity provider.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	// Issuer, when set, must match the token's iss claim.
	Issuer string `env:"ISSUER"`
}
