// Package timeline merges the heterogeneous interaction records attached to a
// lead (voice calls from the phone integration, conversation threads spanning
// sms, web chat and email/form channels) into one deduplicated, chronologically
// ordered sequence for display. The whole package is pure computation: no I/O,
// no shared state, safe to invoke concurrently on independent inputs.
package timeline

import "time"

// EntryType identifies the interaction channel of a timeline entry.
type EntryType string

const (
	TypeVoiceCall EntryType = "voice_call"
	TypeSMS       EntryType = "sms"
	TypeEmail     EntryType = "email"
	TypeChatbot   EntryType = "chatbot"
)

// Entry is one row of the assembled timeline. The details payload is tagged by
// Type: Call is set for voice_call entries, Messages for everything else.
type Entry struct {
	ID        string          `json:"id"`
	Type      EntryType       `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Summary   string          `json:"summary"`
	Call      *CallDetails    `json:"call,omitempty"`
	Messages  []MessageDetail `json:"messages,omitempty"`
}

// CallDetails carries the expanded-view payload of a voice call entry.
type CallDetails struct {
	CallerName   string `json:"caller_name,omitempty"`
	CallerEmail  string `json:"caller_email,omitempty"`
	CallerIntent string `json:"caller_intent,omitempty"`
	Summary      string `json:"summary,omitempty"`
	Transcript   string `json:"transcript,omitempty"`
}

// MessageDetail is one conversation turn with its parsed timestamp. Within an
// entry, messages are ordered oldest first so the expanded view reads
// top-to-bottom like a real conversation.
type MessageDetail struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChannelPresence reports which channels occur in an assembled timeline. It
// drives the summary badges only, never gating logic.
type ChannelPresence struct {
	HasVoiceCalls bool `json:"has_voice_calls"`
	HasSMS        bool `json:"has_sms"`
	HasChatbot    bool `json:"has_chatbot"`
	HasEmail      bool `json:"has_email"`
}
