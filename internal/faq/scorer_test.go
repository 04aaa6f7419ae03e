package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCorpus() []FAQ {
	return []FAQ{
		{
			ID:       "faq-password",
			Question: "How do I reset my password?",
			Answer:   "To reset your password: 1) Click 'Forgot Password' on the login page, 2) Enter your registered email address.",
			Category: "Account Management",
			Keywords: []string{"password", "reset", "forgot", "login"},
		},
		{
			ID:       "faq-refund",
			Question: "What is your refund policy?",
			Answer:   "Our refund policy: 30-day money-back guarantee for all new subscriptions.",
			Category: "Billing & Payments",
			Keywords: []string{"refund", "return", "money back"},
		},
		{
			ID:       "faq-tracking",
			Question: "How do I track my order?",
			Answer:   "Log into your account and go to 'My Orders' to view tracking information.",
			Category: "Shipping & Delivery",
			Keywords: []string{"track", "order", "shipping", "delivery"},
		},
		{
			ID:       "faq-hours",
			Question: "What are your customer support hours?",
			Answer:   "Chat and email support is available 24/7.",
			Category: "General",
			Keywords: []string{"hours", "support", "contact"},
		},
	}
}

func TestRank_QuestionSubstringIsTopResult(t *testing.T) {
	got := Rank("How do I reset my password?", testCorpus(), DefaultSearchLimit)

	require.NotEmpty(t, got)
	assert.Equal(t, "faq-password", got[0].ID)
}

func TestRank_KeywordMatches(t *testing.T) {
	// No question/answer substring, only the keywords "track" and "order".
	got := Rank("where is my order? I want to track it", testCorpus(), DefaultSearchLimit)

	require.NotEmpty(t, got)
	assert.Equal(t, "faq-tracking", got[0].ID)
}

func TestRank_ZeroScoreExcluded(t *testing.T) {
	got := Rank("completely unrelated gibberish xyzzy", testCorpus(), DefaultSearchLimit)
	assert.Empty(t, got)
}

func TestRank_EmptyCorpus(t *testing.T) {
	assert.Empty(t, Rank("refund", nil, DefaultSearchLimit))
}

func TestRank_CaseInsensitive(t *testing.T) {
	got := Rank("WHAT IS YOUR REFUND POLICY?", testCorpus(), DefaultSearchLimit)

	require.NotEmpty(t, got)
	assert.Equal(t, "faq-refund", got[0].ID)
}

func TestRank_LimitApplied(t *testing.T) {
	// "support" is a keyword of faq-hours and a substring of nothing else,
	// "order" hits faq-tracking; craft a query hitting three entries.
	got := Rank("i need support to track my order and get a refund", testCorpus(), 2)
	assert.Len(t, got, 2)
}

func TestRank_TiesKeepCorpusOrder(t *testing.T) {
	corpus := []FAQ{
		{ID: "a", Question: "alpha", Answer: "", Keywords: []string{"shared"}},
		{ID: "b", Question: "beta", Answer: "", Keywords: []string{"shared"}},
		{ID: "c", Question: "gamma", Answer: "", Keywords: []string{"shared"}},
	}

	got := Rank("shared", corpus, DefaultSearchLimit)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestRank_Idempotent(t *testing.T) {
	corpus := testCorpus()

	first := Rank("refund", corpus, DefaultSearchLimit)
	second := Rank("refund", corpus, DefaultSearchLimit)

	assert.Equal(t, first, second)
	// The corpus itself must not be reordered.
	assert.Equal(t, "faq-password", corpus[0].ID)
}

func TestRank_QuestionMatchOutranksSingleKeyword(t *testing.T) {
	corpus := []FAQ{
		{ID: "kw-only", Question: "Something else", Answer: "", Keywords: []string{"password"}},
		{ID: "q-match", Question: "password", Answer: "", Keywords: nil},
	}

	// Query contains the keyword (+2 for kw-only) and is a substring of the
	// second question (+5 for q-match).
	got := Rank("password", corpus, DefaultSearchLimit)

	require.Len(t, got, 2)
	assert.Equal(t, "q-match", got[0].ID)
}
