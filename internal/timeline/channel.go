package timeline

import "strings"

// ClassifyChannel maps a raw channel label onto the closed entry-type set.
// Voice calls never pass through here - they come from the lead's call list,
// not from a channel field. The mapping is total: channel taxonomies evolve
// upstream, so unknown or absent labels fall through to chatbot (web chat)
// rather than erroring.
func ClassifyChannel(label string) EntryType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "sms", "text":
		return TypeSMS
	case "email", "form", "web_form", "contact_form":
		return TypeEmail
	default:
		return TypeChatbot
	}
}
