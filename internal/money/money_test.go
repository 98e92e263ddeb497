package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.0, Round2(10))
	assert.Equal(t, 10.01, Round2(10.005))
	assert.Equal(t, 10.0, Round2(10.0049))
	assert.Equal(t, 0.5, Round2(0.5))
	assert.Equal(t, 1.23, Round2(1.2349))
}

func TestPercent(t *testing.T) {
	// 5% of a $10.00 interest payment
	assert.Equal(t, 0.5, Percent(10, 5))
	// 1% daily rate on a $1000 principal
	assert.Equal(t, 10.0, Percent(1000, 1))
	// 0.5% daily rate on a principal that does not divide evenly
	assert.Equal(t, 0.56, Percent(111.11, 0.5))
	assert.Equal(t, 0.0, Percent(100, 0))
}
