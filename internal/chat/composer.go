package chat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"supportbot/internal/ai"
	"supportbot/internal/faq"
)

const (
	confLLMWithFAQs = 0.9
	confLLMNoFAQs   = 0.8
	confFAQFallback = 0.85
	confGeneric     = 0.4

	// A reply under 20 chars or below 0.5 confidence counts as a failed
	// resolution attempt.
	minHelpfulLength   = 20
	lowConfidenceFloor = 0.5

	answerPreviewLen = 100
)

const genericResponse = "Thank you for your question. While I don't have a specific answer in my knowledge base, I'm here to help! Could you provide more details, or would you like me to escalate this to our human support team who can assist you better?"

// Composition is the outcome of one reply-composition turn. FailedAttempt
// reports whether the session's counter must be bumped, at most once per
// turn even when both the generic-response and low-quality checks fire.
type Composition struct {
	Text          string
	Confidence    float64
	FAQMatched    bool
	FailedAttempt bool
}

// Composer builds the assistant reply from the language backend when one is
// configured, degrading to FAQ-based composition otherwise.
type Composer struct {
	provider ai.Provider
}

// NewComposer accepts a nil provider, which forces the fallback path.
func NewComposer(provider ai.Provider) *Composer {
	return &Composer{provider: provider}
}

func (c *Composer) Compose(ctx context.Context, userText string, matches []faq.FAQ) Composition {
	if c.provider != nil {
		reply, err := c.provider.Chat(ctx, buildSystemPrompt(matches), userText)
		if err == nil && reply != "" {
			conf := confLLMNoFAQs
			if len(matches) > 0 {
				conf = confLLMWithFAQs
			}
			return finalize(Composition{
				Text:       reply,
				Confidence: conf,
				FAQMatched: len(matches) > 0,
			})
		}
		zap.L().Warn("language backend failed, using faq fallback", zap.Error(err))
	}

	if len(matches) > 0 {
		return finalize(Composition{
			Text:       faqFallbackText(matches),
			Confidence: confFAQFallback,
			FAQMatched: true,
		})
	}

	// Nothing to answer from: offer to help or escalate, and count the miss.
	return finalize(Composition{
		Text:          genericResponse,
		Confidence:    confGeneric,
		FailedAttempt: true,
	})
}

// finalize applies the short/low-confidence quality check without
// double-counting a bump already taken by the generic branch.
func finalize(comp Composition) Composition {
	if !comp.FailedAttempt && (len(comp.Text) < minHelpfulLength || comp.Confidence < lowConfidenceFloor) {
		comp.FailedAttempt = true
	}
	return comp
}

func buildSystemPrompt(matches []faq.FAQ) string {
	var faqContext strings.Builder
	if len(matches) > 0 {
		faqContext.WriteString("\n\nRelevant FAQ information:\n")
		for i, f := range matches {
			fmt.Fprintf(&faqContext, "%d. Q: %s\nA: %s\n\n", i+1, f.Question, f.Answer)
		}
	}

	return fmt.Sprintf(`You are a helpful customer support AI assistant. Your goal is to provide accurate, friendly, and professional support.

Guidelines:
- Be empathetic and understanding
- Provide clear, concise answers
- Use the FAQ information when relevant
- If you don't know something, admit it honestly
- Stay professional and courteous
- Keep responses concise but informative
%s`, faqContext.String())
}

func faqFallbackText(matches []faq.FAQ) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Great question! %s\n\n", matches[0].Answer)

	if len(matches) > 1 {
		b.WriteString("You might also find these helpful:\n")
		for i, f := range matches[1:] {
			fmt.Fprintf(&b, "\n%d. **%s**: %s...", i+1, f.Question, answerPreview(f.Answer))
		}
	}
	return b.String()
}

func answerPreview(answer string) string {
	if len(answer) <= answerPreviewLen {
		return answer
	}
	return answer[:answerPreviewLen]
}
