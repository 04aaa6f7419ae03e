package chat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEscalation_KeywordTriggers(t *testing.T) {
	session := &Session{SessionID: "01TEST", Status: StatusActive}

	for _, kw := range escalationKeywords {
		msg := fmt.Sprintf("Honestly, %s is where I'm at right now", kw)
		should, reason := CheckEscalation(msg, session)
		assert.True(t, should, "keyword %q should escalate", kw)
		assert.Equal(t, fmt.Sprintf("Customer used escalation keyword: '%s'", kw), reason)
	}
}

func TestCheckEscalation_CaseInsensitive(t *testing.T) {
	session := &Session{SessionID: "01TEST", Status: StatusActive}

	should, reason := CheckEscalation("I want a REFUND right now", session)
	assert.True(t, should)
	assert.Equal(t, "Customer used escalation keyword: 'refund'", reason)
}

func TestCheckEscalation_FirstKeywordWins(t *testing.T) {
	session := &Session{SessionID: "01TEST", Status: StatusActive}

	// "refund" precedes "manager" in the trigger list.
	_, reason := CheckEscalation("give me a refund or get me a manager", session)
	assert.Equal(t, "Customer used escalation keyword: 'refund'", reason)
}

func TestCheckEscalation_FailedAttemptsThreshold(t *testing.T) {
	session := &Session{SessionID: "01TEST", Status: StatusActive, FailedAttempts: 3}

	should, reason := CheckEscalation("how do I change my avatar?", session)
	assert.True(t, should)
	assert.Equal(t, "Multiple failed resolution attempts", reason)
}

func TestCheckEscalation_BelowThresholdNoKeyword(t *testing.T) {
	session := &Session{SessionID: "01TEST", Status: StatusActive, FailedAttempts: 2}

	should, reason := CheckEscalation("how do I change my avatar?", session)
	assert.False(t, should)
	assert.Empty(t, reason)
}

func TestCheckEscalation_KeywordBeatsThresholdReason(t *testing.T) {
	session := &Session{SessionID: "01TEST", Status: StatusActive, FailedAttempts: 5}

	// Keyword reason takes precedence even when the counter is over the bar.
	_, reason := CheckEscalation("this is unacceptable", session)
	assert.Equal(t, "Customer used escalation keyword: 'unacceptable'", reason)
}
