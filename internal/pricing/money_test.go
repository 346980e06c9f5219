package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 10.13, RoundMoney(10.125))
	assert.Equal(t, 0.0, RoundMoney(0.004))
	assert.Equal(t, 400.0, RoundMoney(399.999))
}

func TestAmountsEqual(t *testing.T) {
	assert.True(t, AmountsEqual(400, 399.999))
	assert.True(t, AmountsEqual(66.67, 200.0/3))
	assert.False(t, AmountsEqual(400, 399.98))
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(40000), ToMinorUnits(400))
	assert.Equal(t, int64(6667), ToMinorUnits(66.666))
	assert.Equal(t, 400.5, FromMinorUnits(40050))
}
