package models

// Message is a single turn in a conversation thread. CreatedAt is textual as
// delivered by the channel integrations; the timeline package parses it and
// drops messages whose timestamp is missing or unusable.
type Message struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ConversationThread groups the messages of one logical conversation on one
// channel (sms, web chat, email/form).
type ConversationThread struct {
	ID       string    `json:"id,omitempty"`
	Channel  string    `json:"channel,omitempty"`
	Messages []Message `json:"messages"`
}

// ConversationFetchResult is the payload of a per-lead conversation fetch.
// Older deployments return one flat messages array; newer ones return a
// conversations list. Both shapes decode into this struct and Threads folds
// them into one canonical form before anything else touches the data.
type ConversationFetchResult struct {
	Channel       string               `json:"channel,omitempty"`
	Messages      []Message            `json:"messages,omitempty"`
	Conversations []ConversationThread `json:"conversations,omitempty"`
}

// Threads returns the canonical thread list for the result. A nil result (the
// fetch is best-effort and may have failed) yields no threads. A present
// conversations list wins over the legacy flat shape; a legacy result becomes
// a single implicit thread carrying the result's channel label.
func (r *ConversationFetchResult) Threads() []ConversationThread {
	if r == nil {
		return nil
	}
	if r.Conversations != nil {
		return r.Conversations
	}
	if len(r.Messages) > 0 {
		return []ConversationThread{{Channel: r.Channel, Messages: r.Messages}}
	}
	return nil
}
