package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_PendingShortcuts(t *testing.T) {
	confirmed, err := Transition(StatusPending, StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmed)

	cancelled, err := Transition(StatusPending, StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled)
}

func TestTransition_SameStatusRejected(t *testing.T) {
	for _, status := range AllStatuses {
		_, err := Transition(status, status)
		assert.ErrorIs(t, err, ErrSameStatus, string(status))
	}
}

func TestTransition_PermissiveTable(t *testing.T) {
	// Любой статус может перейти в любой из трех остальных
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			if from == to {
				continue
			}
			result, err := Transition(from, to)
			require.NoError(t, err, "%s → %s", from, to)
			assert.Equal(t, to, result)
		}
	}
}

func TestTransition_UnknownStatusRejected(t *testing.T) {
	_, err := Transition(StatusPending, BookingStatus("archived"))
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = Transition(BookingStatus("draft"), StatusConfirmed)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestAccept(t *testing.T) {
	status, err := Accept(StatusPending)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, status)

	for _, from := range []BookingStatus{StatusConfirmed, StatusCancelled, StatusCompleted} {
		_, err := Accept(from)
		assert.ErrorIs(t, err, ErrNotPending, string(from))
	}
}

func TestDecline(t *testing.T) {
	status, err := Decline(StatusPending)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, status)

	for _, from := range []BookingStatus{StatusConfirmed, StatusCancelled, StatusCompleted} {
		_, err := Decline(from)
		assert.ErrorIs(t, err, ErrNotPending, string(from))
	}
}

func TestValidateStatus(t *testing.T) {
	for _, status := range AllStatuses {
		assert.NoError(t, ValidateStatus(status))
	}
	assert.ErrorIs(t, ValidateStatus(BookingStatus("no_show")), ErrUnknownStatus)
	assert.ErrorIs(t, ValidateStatus(BookingStatus("")), ErrUnknownStatus)
}
