package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPositiveDuration(t *testing.T) {
	assert.Equal(t, 3*time.Second, PositiveDuration("3s", time.Minute))
	assert.Equal(t, time.Minute, PositiveDuration("soon", time.Minute))
	assert.Equal(t, time.Minute, PositiveDuration("0s", time.Minute))
	assert.Equal(t, time.Minute, PositiveDuration("-2s", time.Minute))
}
