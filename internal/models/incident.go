package models

// Incident represents one open moderation case: a flagged message waiting for
// an admin decision. AdminChannelMessageID points at the decision prompt posted
// to the admin channel and is zero when the value is used as a bare lookup key.
type Incident struct {
	ChatID                int64 `json:"chat_id"`
	MessageID             int64 `json:"message_id"`
	AdminChannelMessageID int64 `json:"admin_channel_message_id,omitempty"`
}

// IncidentKey identifies an incident. Two incidents are the same case iff
// their keys match; the admin channel message id is metadata only.
type IncidentKey struct {
	ChatID    int64
	MessageID int64
}

// Key returns the identity of the incident.
func (i Incident) Key() IncidentKey {
	return IncidentKey{ChatID: i.ChatID, MessageID: i.MessageID}
}
