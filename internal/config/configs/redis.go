package configs

// Redis configures the optional Redis connection used by the free tier
// store. An empty Address disables Redis.
type Redis struct {
	Address  string `env:"ADDRESS"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"       envDefault:"0"`
}
