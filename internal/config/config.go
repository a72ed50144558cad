package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types

	"github.com/joho/godotenv" // loads a local .env file into the environment
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The types reflect how the values are used
// in the application: strings for identifiers and secrets, ints for
// durations, lengths and costs.
type Config struct {
	Env              string // application environment (e.g. "dev", "prod")
	Port             string // HTTP port to listen on
	AppName          string // service name reported by the health endpoint
	DBUser           string // database username
	DBPass           string // database password (optional)
	DBHost           string // database host address
	DBPort           string // database port number
	DBName           string // database name
	JWTSecret        string // base64-encoded secret used to sign access tokens
	TokenTTLSec      int    // access token time-to-live in seconds
	SessionTTLSec    int    // session lifetime in seconds
	SessionSecretLen int    // length of generated session secrets
	BcryptCost       int    // bcrypt cost for password and secret hashing
}

// Load reads configuration values from environment variables and
// returns a Config. A local .env file is merged in first when present.
// Required variables are enforced by must() and missing values cause
// the program to exit with a fatal log message.
func Load() Config {
	_ = godotenv.Load() // absent .env is fine; real env always wins

	return Config{
		Env:              must("APP_ENV"),
		Port:             must("APP_PORT"),
		AppName:          must("APP_NAME"),
		DBUser:           must("DB_USER"),
		DBPass:           os.Getenv("DB_PASS"), // empty allowed
		DBHost:           must("DB_HOST"),
		DBPort:           must("DB_PORT"),
		DBName:           must("DB_NAME"),
		JWTSecret:        must("JWT_SECRET"),
		TokenTTLSec:      mustInt("TOKEN_TTL_SEC"),
		SessionTTLSec:    mustInt("SESSION_TTL_SEC"),
		SessionSecretLen: mustInt("SESSION_SECRET_LENGTH"),
		BcryptCost:       mustInt("BCRYPT_COST"),
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
// If conversion fails, the application logs a fatal error and exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
