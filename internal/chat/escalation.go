package chat

import (
	"fmt"
	"strings"
)

// failedAttemptThreshold is the counter value at which a session escalates
// without any trigger phrase in the message.
const failedAttemptThreshold = 3

// escalationKeywords is scanned in order; the first phrase found in the
// message wins and names the reason.
var escalationKeywords = []string{
	"refund", "complaint", "manager", "speak to human", "human agent",
	"not satisfied", "unacceptable", "terrible", "worst", "angry",
	"lawsuit", "lawyer", "legal", "compensation",
}

// CheckEscalation decides whether an inbound message escalates the session.
// It runs before any other response logic and only on non-escalated
// sessions. Matching is a case-insensitive substring scan.
func CheckEscalation(message string, session *Session) (bool, string) {
	messageLower := strings.ToLower(message)

	for _, kw := range escalationKeywords {
		if strings.Contains(messageLower, kw) {
			return true, fmt.Sprintf("Customer used escalation keyword: '%s'", kw)
		}
	}

	if session.FailedAttempts >= failedAttemptThreshold {
		return true, "Multiple failed resolution attempts"
	}

	return false, ""
}
