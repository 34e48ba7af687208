package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearsInBusiness(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 26, YearsInBusiness(2000, now))
	assert.Equal(t, 0, YearsInBusiness(0, now))
	assert.Equal(t, 0, YearsInBusiness(-5, now))
	assert.Equal(t, 0, YearsInBusiness(2030, now))
}

func TestYearsInBusinessText(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "over 26 years", YearsInBusinessText(2000, now))
	assert.Equal(t, "", YearsInBusinessText(0, now))
	assert.Equal(t, "", YearsInBusinessText(2026, now))
}
