// Package categorizer assigns a best-guess spending category to a bank
// message using ordered keyword rule tables.
package categorizer

// Strategy is one approach to tagging a message. Strategies are evaluated
// in a fixed order and the first hit wins.
type Strategy interface {
	// Tag attempts to categorize the message body. The boolean reports
	// whether this strategy produced a tag.
	Tag(body string) (string, bool)

	// Name identifies the strategy in logs.
	Name() string
}
