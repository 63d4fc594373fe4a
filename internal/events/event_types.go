package events

import (
	"time"

	"github.com/spec-kit/hr-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAttendanceRecorded EventType = "attendance_recorded"
	EventLeaveRequested     EventType = "leave_requested"
	EventLeaveStatusChanged EventType = "leave_status_changed"
	EventDailyTokenIssued   EventType = "daily_token_issued"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
	System bool        `json:"system,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AttendanceRecordedPayload payload.
type AttendanceRecordedPayload struct {
	AttendanceID string `json:"attendance_id"`
	UserID       string `json:"user_id"`
	EmployeeID   string `json:"employee_id,omitempty"`
	Date         string `json:"date"`
	Method       string `json:"method"`
}

// LeaveRequestedPayload payload.
type LeaveRequestedPayload struct {
	LeaveID   string           `json:"leave_id"`
	UserID    string           `json:"user_id"`
	LeaveType domain.LeaveType `json:"leave_type"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
}

// LeaveStatusChangedPayload payload.
type LeaveStatusChangedPayload struct {
	LeaveID   string             `json:"leave_id"`
	UserID    string             `json:"user_id"`
	OldStatus domain.LeaveStatus `json:"old_status"`
	NewStatus domain.LeaveStatus `json:"new_status"`
}

// DailyTokenIssuedPayload payload.
type DailyTokenIssuedPayload struct {
	Date        string `json:"date"`
	Regenerated bool   `json:"regenerated"`
}
