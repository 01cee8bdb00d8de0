package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(42, 0, 10))
}

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.0, Lerp(0, 10, 0))
	assert.Equal(t, 10.0, Lerp(0, 10, 1))
	assert.Equal(t, 2.5, Lerp(0, 10, 0.25))
}
