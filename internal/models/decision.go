package models

import "time"

// DecisionRecord represents a resolved incident stored in the 'decisions' table.
// Open incidents live only in memory; the audit trail keeps closed cases.
type DecisionRecord struct {
	ID         string    `db:"id" json:"id"`
	ChatID     int64     `db:"chat_id" json:"chat_id"`
	MessageID  int64     `db:"message_id" json:"message_id"`
	UserID     int64     `db:"user_id" json:"user_id"`
	Action     string    `db:"action" json:"action"` // "spam" or "nospam"
	ResolvedBy int64     `db:"resolved_by" json:"resolved_by"`
	Outcome    string    `db:"outcome" json:"outcome"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
