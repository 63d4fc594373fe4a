package dto

import "time"

// ScanRequest carries the scanned signed credential.
type ScanRequest struct {
	QR string `json:"qr"`
}

// GenerateTokenResponse is returned from token issuance.
type GenerateTokenResponse struct {
	Success     bool   `json:"success"`
	Token       string `json:"token"`
	Date        string `json:"date"`
	Regenerated bool   `json:"regenerated"`
}

// AttendanceRecord is the wire form of a check-in.
type AttendanceRecord struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	EmployeeID string    `json:"employeeId,omitempty"`
	Date       string    `json:"date"`
	Time       time.Time `json:"time"`
	Method     string    `json:"method"`
}
