package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminAction_AllowedFrom(t *testing.T) {
	tests := []struct {
		action  AdminAction
		from    BookingStatus
		allowed bool
	}{
		{ActionApprove, StatusPending, true},
		{ActionApprove, StatusApproved, false},
		{ActionApprove, StatusRejected, false},
		{ActionApprove, StatusCompleted, false},
		{ActionReject, StatusPending, true},
		{ActionReject, StatusApproved, false},
		{ActionReject, StatusCompleted, false},
		{ActionComplete, StatusApproved, true},
		{ActionComplete, StatusPending, false},
		{ActionComplete, StatusRejected, false},
		{ActionComplete, StatusCompleted, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.action.AllowedFrom(tt.from),
			"%s from %s", tt.action, tt.from)
	}
}

func TestAdminAction_TargetStatus(t *testing.T) {
	assert.Equal(t, StatusApproved, ActionApprove.TargetStatus())
	assert.Equal(t, StatusRejected, ActionReject.TargetStatus())
	assert.Equal(t, StatusCompleted, ActionComplete.TargetStatus())
}

func TestAdminAction_IsValid(t *testing.T) {
	assert.True(t, ActionApprove.IsValid())
	assert.True(t, ActionReject.IsValid())
	assert.True(t, ActionComplete.IsValid())
	assert.False(t, AdminAction("cancel").IsValid())
	assert.False(t, AdminAction("").IsValid())
}

func TestBooking_OccupiesSlot(t *testing.T) {
	// Слот занимает только одобренное бронирование: ни pending,
	// ни терминальные статусы доступность не блокируют
	tests := []struct {
		status   BookingStatus
		occupies bool
	}{
		{StatusPending, false},
		{StatusApproved, true},
		{StatusRejected, false},
		{StatusCompleted, false},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.status}
		assert.Equal(t, tt.occupies, b.OccupiesSlot(), "status %s", tt.status)
	}
}

func TestBooking_CanCapturePayment(t *testing.T) {
	tests := []struct {
		name    string
		status  BookingStatus
		paid    bool
		payable bool
	}{
		{"pending unpaid", StatusPending, false, true},
		{"approved unpaid", StatusApproved, false, true},
		{"pending already paid", StatusPending, true, false},
		{"approved already paid", StatusApproved, true, false},
		{"rejected", StatusRejected, false, false},
		{"completed", StatusCompleted, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Booking{Status: tt.status, Paid: tt.paid}
			assert.Equal(t, tt.payable, b.CanCapturePayment())
		})
	}
}

func TestBooking_IsTerminal(t *testing.T) {
	tests := []struct {
		status   BookingStatus
		terminal bool
	}{
		{StatusPending, false},
		{StatusApproved, false},
		{StatusRejected, true},
		{StatusCompleted, true},
	}

	for _, tt := range tests {
		b := Booking{Status: tt.status}
		assert.Equal(t, tt.terminal, b.IsTerminal(), "status %s", tt.status)
	}
}
