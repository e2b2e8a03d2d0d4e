package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// PositiveDuration parses a duration string and falls back to defaultDuration
// when it is malformed or not positive. The global logger is used because
// configuration is read before the application logger is set up.
func PositiveDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil || duration <= 0 {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Invalid duration, using default")
		return defaultDuration
	}
	return duration
}
