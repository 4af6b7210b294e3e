package appointment

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
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
		case **string:
			*d = nil
		case *domain.AppointmentStatus:
			*d = domain.AppointmentStatus(v.(string))
		case interface{ Scan(interface{}) error }:
			if err := d.Scan(v); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestScanAppointment(t *testing.T) {
	created := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	row := fakeRow{values: []interface{}{
		int64(5),
		"Ivan",
		"+79990001122",
		nil,
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		"14:30",
		45,
		"confirmed",
		nil,
		nil,
		created,
		created,
	}}

	appt, err := scanAppointment(row)
	require.NoError(t, err)

	assert.Equal(t, int64(5), appt.ID)
	assert.Equal(t, "2025-01-06 14:30", appt.StartsAt.String())
	assert.Equal(t, 45, appt.DurationMinutes)
	assert.Equal(t, domain.StatusConfirmed, appt.Status)
	assert.Nil(t, appt.CustomerEmail)
	assert.Equal(t, created, appt.CreatedAt)
}

func TestScanAppointment_InvalidStartTime(t *testing.T) {
	row := fakeRow{values: []interface{}{
		int64(5), "Ivan", "+79990001122", nil,
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		"25:00",
	}}

	_, err := scanAppointment(row)
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	assert.ErrorIs(t, classify("Create", &pq.Error{Code: "23505"}), ErrSlotTaken)
	assert.ErrorIs(t, classify("Create", &pq.Error{Code: "40001"}), ErrConflict)
	assert.ErrorIs(t, classify("Create", errors.New("broken pipe")), ErrExecQuery)
}
