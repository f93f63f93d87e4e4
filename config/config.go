package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DBUser            string
	DBPass            string
	MongoURIOverride  string
	AccessTokenSecret string
	StripeSecretKey   string
	MailgunAPIKey     string
	MailgunDomain     string
	AllowedOrigins    string
	GinMode           string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:              getEnv("PORT", "5000"),
		DBUser:            getEnv("DB_USER", ""),
		DBPass:            getEnv("DB_PASS", ""),
		MongoURIOverride:  getEnv("MONGO_URI", ""),
		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		StripeSecretKey:   getEnv("STRIPE_SECRET_KEY", ""),
		MailgunAPIKey:     getEnv("MAILGUN_API_KEY", "key-yourkeyhere"),
		MailgunDomain:     getEnv("MAILGUN_SENDING_DOMAIN", ""),
		AllowedOrigins:    getEnv("ALLOWED_ORIGINS", ""),
		GinMode:           getEnv("GIN_MODE", ""),
	}
}

// MongoURI returns the cluster connection string. MONGO_URI wins when set,
// which is how local runs point at a plain mongod.
func (c *Config) MongoURI() string {
	if c.MongoURIOverride != "" {
		return c.MongoURIOverride
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@cluster0.pw1gp.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
		c.DBUser, c.DBPass,
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
