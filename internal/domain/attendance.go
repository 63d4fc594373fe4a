package domain

import "time"

// AttendanceMethodQR marks records created through a QR scan.
const AttendanceMethodQR = "qr"

// Attendance is a single check-in. At most one exists per (UserID, Date);
// the store enforces this with a unique compound key.
type Attendance struct {
	ID         string
	UserID     string
	EmployeeID string
	Date       string // YYYY-MM-DD, server-local calendar
	Time       time.Time
	Method     string
	CreatedAt  time.Time
}

// AttendanceFilter narrows attendance listings.
type AttendanceFilter struct {
	Date   string
	UserID string
}
