package timeline

import (
	"fmt"
	"strings"

	"github.com/DustinYates/cheatah-sub002/internal/models"
)

// CallSummary builds the collapsed-state headline for a voice call entry.
func CallSummary(call models.VoiceCall) string {
	name := strings.TrimSpace(call.CallerName)
	if name == "" {
		name = "Unknown caller"
	}
	summary := "Phone call from " + name
	if intent := strings.TrimSpace(call.CallerIntent); intent != "" {
		summary += " - " + intent
	}
	return summary
}

// ConversationSummary builds the collapsed-state headline for a grouped
// conversation. Email-kind threads are form submissions and get a fixed
// label. Message content is never inspected here, so the collapsed view stays
// short and stable regardless of message length.
func ConversationSummary(kind EntryType, messageCount int) string {
	if kind == TypeEmail {
		return "Get In Touch Form Submission"
	}
	if messageCount == 1 {
		return "Conversation (1 message)"
	}
	return fmt.Sprintf("Conversation (%d messages)", messageCount)
}
