package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Code  string  `json:"code" validate:"required,min=3"`
	Value float64 `json:"value" validate:"gte=0"`
	Kind  string  `json:"kind" validate:"omitempty,oneof=a b"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(sample{Code: "ABC", Value: 1}))

	err := Struct(sample{Code: "A", Value: -1, Kind: "c"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code: min=3")
	assert.Contains(t, err.Error(), "value: gte=0")
	assert.Contains(t, err.Error(), "kind: oneof=a b")

	err = Struct(sample{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code: required")
}
