package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr        string
	Environment string

	// SeedDemoData populates the in-memory directory and grievance stores
	// with the portal's sample records on startup.
	SeedDemoData bool

	// DemoOTP accepts any well-formed 6-digit code during confirmation.
	// Production deployments should disable it so codes verify against the
	// hashed challenge.
	DemoOTP bool

	RedisURL    string
	DatabaseURL string

	KafkaBrokers           string
	RegistrationEventTopic string
	GrievanceEventTopic    string

	Latency Latency
}

// Latency holds the artificial delays of the simulated upstream calls. The
// portal front end expects these pauses; tests zero them out.
type Latency struct {
	OTPDelivery     time.Duration
	OTPVerification time.Duration
	Submission      time.Duration
	DirectoryLookup time.Duration
}

// AttemptCookieName identifies the registration attempt across page loads.
const AttemptCookieName = "registration_attempt"

// SessionRetention bounds how long a registration attempt survives in redis.
var SessionRetention = 24 * time.Hour

// OTPChallengeTTL matches the portal's stated 10 minute code validity.
var OTPChallengeTTL = 10 * time.Minute

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("PORTAL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	env := os.Getenv("PORTAL_ENV")
	if env == "" {
		env = "development"
	}

	regTopic := os.Getenv("KAFKA_REGISTRATION_TOPIC")
	if regTopic == "" {
		regTopic = "portal.registrations.submitted"
	}
	grvTopic := os.Getenv("KAFKA_GRIEVANCE_TOPIC")
	if grvTopic == "" {
		grvTopic = "portal.grievances.filed"
	}

	return Server{
		Addr:                   addr,
		Environment:            env,
		SeedDemoData:           os.Getenv("SEED_DEMO_DATA") != "false",
		DemoOTP:                os.Getenv("STRICT_OTP") != "true",
		RedisURL:               os.Getenv("REDIS_URL"),
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		KafkaBrokers:           os.Getenv("KAFKA_BROKERS"),
		RegistrationEventTopic: regTopic,
		GrievanceEventTopic:    grvTopic,
		Latency: Latency{
			OTPDelivery:     durationFromEnv("OTP_DELIVERY_LATENCY", 2*time.Second),
			OTPVerification: durationFromEnv("OTP_VERIFY_LATENCY", 2*time.Second),
			Submission:      durationFromEnv("SUBMISSION_LATENCY", 2*time.Second),
			DirectoryLookup: durationFromEnv("DIRECTORY_LOOKUP_LATENCY", 500*time.Millisecond),
		},
	}
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	// Bare numbers are treated as milliseconds for convenience.
	if ms, err := strconv.Atoi(raw); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
