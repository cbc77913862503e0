package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled by user", from: StatusPending, to: StatusCancelledByUser, want: true},
		{name: "pending to cancelled by store", from: StatusPending, to: StatusCancelledByStore, want: true},
		{name: "pending to completed skips confirmation", from: StatusPending, to: StatusCompleted, want: false},
		{name: "pending to no_show skips confirmation", from: StatusPending, to: StatusNoShow, want: false},

		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "confirmed to no_show", from: StatusConfirmed, to: StatusNoShow, want: true},
		{name: "confirmed to cancelled by user", from: StatusConfirmed, to: StatusCancelledByUser, want: true},
		{name: "confirmed to cancelled by store", from: StatusConfirmed, to: StatusCancelledByStore, want: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, want: false},

		{name: "completed is terminal", from: StatusCompleted, to: StatusConfirmed, want: false},
		{name: "cancelled by user is terminal", from: StatusCancelledByUser, to: StatusPending, want: false},
		{name: "cancelled by store is terminal", from: StatusCancelledByStore, to: StatusConfirmed, want: false},
		{name: "no_show is terminal", from: StatusNoShow, to: StatusCompleted, want: false},

		{name: "unknown source status", from: BookingStatus("draft"), to: StatusConfirmed, want: false},
		{name: "same status is not a transition", from: StatusPending, to: StatusPending, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.False(t, IsTerminal(StatusConfirmed))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCancelledByUser))
	assert.True(t, IsTerminal(StatusCancelledByStore))
	assert.True(t, IsTerminal(StatusNoShow))
}

func TestBooking_IsActive(t *testing.T) {
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted} {
		b := Booking{Status: status}
		assert.True(t, b.IsActive(), "status=%s", status)
	}

	// Отменённые и no-show бронирования освобождают слот
	for _, status := range []BookingStatus{StatusCancelledByUser, StatusCancelledByStore, StatusNoShow} {
		b := Booking{Status: status}
		assert.False(t, b.IsActive(), "status=%s", status)
	}
}

func TestBooking_IsCancelled(t *testing.T) {
	for _, status := range []BookingStatus{StatusCancelledByUser, StatusCancelledByStore} {
		b := Booking{Status: status}
		assert.True(t, b.IsCancelled(), "status=%s", status)
	}

	// no_show завершает бронирование, но не считается отменой
	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusNoShow} {
		b := Booking{Status: status}
		assert.False(t, b.IsCancelled(), "status=%s", status)
	}
}

func TestBooking_IsFinished(t *testing.T) {
	for _, status := range []BookingStatus{StatusCompleted, StatusNoShow} {
		b := Booking{Status: status}
		assert.True(t, b.IsFinished(), "status=%s", status)
	}

	for _, status := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelledByUser} {
		b := Booking{Status: status}
		assert.False(t, b.IsFinished(), "status=%s", status)
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{status: StatusPending, want: true},
		{status: StatusConfirmed, want: true},
		{status: StatusCompleted, want: false},
		{status: StatusCancelledByUser, want: false},
		{status: StatusNoShow, want: false},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.status}
		assert.Equal(t, tt.want, b.CanBeCancelled(), "status=%s", tt.status)
	}
}
