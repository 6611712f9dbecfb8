package models

// Verdict is the classifier's decision for a single inbound message.
type Verdict string

const (
	VerdictBenign       Verdict = "benign"
	VerdictDefiniteSpam Verdict = "definite_spam"
	VerdictNeedsReview  Verdict = "needs_review"
	VerdictAdminMention Verdict = "admin_mention"
	VerdictLeaveChat    Verdict = "leave_chat"
)
