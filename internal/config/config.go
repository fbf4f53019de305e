package config

import "os"

// Config holds all process configuration, read from the environment
type Config struct {
	Port        string
	JWTSecret   string
	MongoURI    string // empty means the in-memory user store
	CORSOrigins string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MongoURI:    os.Getenv("MONGO_URI"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
