package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Twilio   TwilioConfig
	Reminder ReminderConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tennis_reservation_db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// TwilioConfig holds the verification/SMS provider credentials. All four are
// required; a missing value is a fatal startup error, never a per-request one.
type TwilioConfig struct {
	AccountSID      string        `env:"TWILIO_ACCOUNT_SID,        required"`
	AuthToken       string        `env:"TWILIO_AUTH_TOKEN,         required"`
	VerifyServiceID string        `env:"TWILIO_VERIFY_SERVICE_SID, required"`
	FromNumber      string        `env:"TWILIO_PHONE_NUMBER,       required"`
	Timeout         time.Duration `env:"TWILIO_TIMEOUT,            default=10s"`
}

type ReminderConfig struct {
	// Timezone in which reservation dates and start times are interpreted.
	Timezone string `env:"REMINDER_TIMEZONE, default=Asia/Jerusalem"`
	// Concurrency of the reminder worker process.
	Concurrency int `env:"REMINDER_CONCURRENCY, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
