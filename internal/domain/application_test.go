package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatus_IsTerminal(t *testing.T) {
	terminal := []ApplicationStatus{ApplicationStatusHired, ApplicationStatusRejected, ApplicationStatusWithdrawn}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "expected %s to be terminal", s)
	}

	active := []ApplicationStatus{
		ApplicationStatusSubmitted, ApplicationStatusViewed, ApplicationStatusShortlisted,
		ApplicationStatusInterviewing, ApplicationStatusOffered,
	}
	for _, s := range active {
		assert.False(t, s.IsTerminal(), "expected %s to be non-terminal", s)
	}
}

func TestApplicationStatus_IsResolved(t *testing.T) {
	assert.True(t, ApplicationStatusHired.IsResolved())
	assert.True(t, ApplicationStatusRejected.IsResolved())
	assert.False(t, ApplicationStatusWithdrawn.IsResolved())
	assert.False(t, ApplicationStatusSubmitted.IsResolved())
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{"submitted to viewed", ApplicationStatusSubmitted, ApplicationStatusViewed, true},
		{"submitted to hired", ApplicationStatusSubmitted, ApplicationStatusHired, true},
		{"submitted to rejected", ApplicationStatusSubmitted, ApplicationStatusRejected, true},
		{"viewed to shortlisted", ApplicationStatusViewed, ApplicationStatusShortlisted, true},
		{"interviewing back to viewed", ApplicationStatusInterviewing, ApplicationStatusViewed, true},
		{"offered to hired", ApplicationStatusOffered, ApplicationStatusHired, true},
		{"re-set current status", ApplicationStatusViewed, ApplicationStatusViewed, true},
		{"no transition into submitted", ApplicationStatusViewed, ApplicationStatusSubmitted, false},
		{"employer cannot withdraw", ApplicationStatusViewed, ApplicationStatusWithdrawn, false},
		{"hired is final", ApplicationStatusHired, ApplicationStatusRejected, false},
		{"rejected is final", ApplicationStatusRejected, ApplicationStatusViewed, false},
		{"withdrawn is final", ApplicationStatusWithdrawn, ApplicationStatusViewed, false},
		{"unknown target", ApplicationStatusViewed, ApplicationStatus("BOGUS"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestApplicationStatus_EmployerSettable(t *testing.T) {
	assert.False(t, ApplicationStatusSubmitted.EmployerSettable())
	assert.False(t, ApplicationStatusWithdrawn.EmployerSettable())
	assert.True(t, ApplicationStatusViewed.EmployerSettable())
	assert.True(t, ApplicationStatusHired.EmployerSettable())
	assert.True(t, ApplicationStatusRejected.EmployerSettable())
}
