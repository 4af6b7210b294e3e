package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	values []interface{}
	err    error
}

func (f fakeRow) Scan(dest ...interface{}) error {
	if f.err != nil {
		return f.err
	}
	for i, v := range f.values {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *int:
			*d = v.(int)
		case *string:
			*d = v.(string)
		case *bool:
			*d = v.(bool)
		case interface{ Scan(interface{}) error }:
			if err := d.Scan(v); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestScanService(t *testing.T) {
	created := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	t.Run("all fields", func(t *testing.T) {
		row := fakeRow{values: []interface{}{
			int64(3), "Haircut", "Short cut", int64(2500), "EUR", int64(45), true, 1, created, created,
		}}

		service, err := scanService(row)
		require.NoError(t, err)

		assert.Equal(t, int64(3), service.ID)
		assert.Equal(t, "Haircut", service.Name)
		require.NotNil(t, service.Description)
		assert.Equal(t, "Short cut", *service.Description)
		assert.Equal(t, int64(2500), service.PriceCents)
		require.NotNil(t, service.DurationMinutes)
		assert.Equal(t, 45, *service.DurationMinutes)
		assert.True(t, service.IsActive)
		assert.Equal(t, created, service.UpdatedAt)
	})

	t.Run("nullable columns", func(t *testing.T) {
		row := fakeRow{values: []interface{}{
			int64(4), "Consultation", nil, int64(0), "EUR", nil, true, 0, created, created,
		}}

		service, err := scanService(row)
		require.NoError(t, err)

		assert.Nil(t, service.Description)
		assert.Nil(t, service.DurationMinutes)
	})

	t.Run("scan error", func(t *testing.T) {
		_, err := scanService(fakeRow{err: errors.New("conn reset")})
		assert.Error(t, err)
	})
}
