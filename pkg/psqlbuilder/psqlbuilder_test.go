package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("bookings").
		Set("status", "approved").
		Where(squirrel.Eq{"id": int64(7), "status": "pending"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET status = $1 WHERE id = $2 AND status = $3", query)
	assert.Equal(t, []interface{}{"approved", int64(7), "pending"}, args)
}
