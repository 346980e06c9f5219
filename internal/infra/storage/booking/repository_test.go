package booking

import (
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClubBookingService/pkg/txmanager"
)

func TestExecError(t *testing.T) {
	err := execError("Create - execute insert", &pq.Error{Code: "40001"})
	assert.ErrorIs(t, err, txmanager.ErrSerialization)
	assert.NotErrorIs(t, err, ErrExecQuery)

	err = execError("Create - execute insert", errors.New("connection refused"))
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, txmanager.ErrSerialization)
}
