package shared_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel_booking/internal/shared"
)

// clearEnv unsets every variable Load reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "METRICS_ADDR", "SERVICE_FEE", "PAYMENT_METHOD"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, shared.Defaults(), shared.Load())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "dev")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("METRICS_ADDR", ":9100")
	t.Setenv("SERVICE_FEE", "75")
	t.Setenv("PAYMENT_METHOD", "Cash")

	c := shared.Load()
	assert.Equal(t, "dev", c.AppEnv)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, ":9100", c.MetricsAddr)
	assert.EqualValues(t, 75, c.ServiceFee)
	assert.Equal(t, "Cash", c.PaymentMethod)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVICE_FEE", "fifty")
	assert.Equal(t, shared.Defaults(), shared.Load())

	t.Setenv("SERVICE_FEE", "-5")
	assert.EqualValues(t, 50, shared.Load().ServiceFee)
}
