package shared

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv        string `envconfig:"APP_ENV" default:"prod"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"warn"`
	MetricsAddr   string `envconfig:"METRICS_ADDR"` // empty disables the metrics server
	ServiceFee    int64  `envconfig:"SERVICE_FEE" default:"50"`
	PaymentMethod string `envconfig:"PAYMENT_METHOD" default:"Credit Card"`
}

func Defaults() Config {
	return Config{
		AppEnv:        "prod",
		LogLevel:      "warn",
		ServiceFee:    50,
		PaymentMethod: "Credit Card",
	}
}

// Load reads the environment. A bad value never stops a booking session:
// it is reported and the defaults are used instead.
func Load() Config {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		log.Warn().Err(err).Msg("invalid environment config, using defaults")
		return Defaults()
	}
	if c.ServiceFee < 0 {
		log.Warn().Int64("fee", c.ServiceFee).Msg("SERVICE_FEE is negative, using default")
		c.ServiceFee = Defaults().ServiceFee
	}
	return c
}
