// Package extractor implements the stages that turn a raw bank notification
// message into a structured transaction record. Every stage is a pure
// function of the original message text: stages never depend on each
// other's output, never perform I/O and are safe to call concurrently.
package extractor

import "strings"

// candidateKeywords are the markers that make a message worth running the
// full pipeline on. A single hit is enough; order carries no meaning here.
var candidateKeywords = []string{
	"debited",
	"credited",
	"spent",
	"transaction",
	"payment",
	"withdrawal",
	"rs.",
	"inr",
}

// IsCandidate reports whether body looks like a bank transaction message.
// The check is purely syntactic: phrasing outside the keyword set is
// silently ignored, with no recovery for false negatives.
func IsCandidate(body string) bool {
	lower := strings.ToLower(body)
	for _, kw := range candidateKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
