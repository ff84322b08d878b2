package model

import "time"

// Email is a composed email as persisted. Records are immutable once created.
type Email struct {
	ID        int       `json:"id"`
	To        string    `json:"to"`
	CC        *string   `json:"cc"`
	BCC       *string   `json:"bcc"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	UserFK    string    `json:"userFK"`
	CreatedAt time.Time `json:"created_at"`
}
