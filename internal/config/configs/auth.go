package configs

// Auth configures bearer token verification.
type Auth struct {
	// JWTSecret is the HS256 key. When empty every bearer token is
	// rejected and only anonymous access works.
	JWTSecret string `env:"JWT_SECRET"`
}
