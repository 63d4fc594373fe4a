package domain

import "time"

// QRToken is the single attendance secret for one calendar day. The store
// holds at most one row per Date.
type QRToken struct {
	ID        string
	Token     string
	Date      string // YYYY-MM-DD, server-local calendar
	CreatedAt time.Time
}
