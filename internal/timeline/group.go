package timeline

import (
	"fmt"
	"sort"

	"github.com/DustinYates/cheatah-sub002/internal/models"
)

// GroupThreads collapses each conversation thread of a fetch result into at
// most one timeline entry. A nil result (the conversation fetch is
// best-effort and may fail independently of the lead fetch) yields no entries.
func GroupThreads(result *models.ConversationFetchResult) []Entry {
	threads := result.Threads()
	if len(threads) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(threads))
	for i, thread := range threads {
		if entry, ok := groupThread(i, thread); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// groupThread builds the single entry for one thread. Messages without a
// parseable timestamp are dropped, the rest are sorted oldest first for the
// expanded view. A thread left with no messages produces no entry at all. The
// entry's timestamp is the last surviving message, so multi-message threads
// sort among single events by their most recent activity.
func groupThread(index int, thread models.ConversationThread) (Entry, bool) {
	msgs := make([]MessageDetail, 0, len(thread.Messages))
	for _, m := range thread.Messages {
		ts, ok := ParseTimestamp(m.CreatedAt)
		if !ok {
			continue
		}
		msgs = append(msgs, MessageDetail{
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: ts,
		})
	}
	if len(msgs) == 0 {
		return Entry{}, false
	}

	sort.SliceStable(msgs, func(a, b int) bool {
		return msgs[a].CreatedAt.Before(msgs[b].CreatedAt)
	})

	kind := ClassifyChannel(thread.Channel)
	return Entry{
		ID:        threadEntryID(index, thread.ID),
		Type:      kind,
		Timestamp: msgs[len(msgs)-1].CreatedAt,
		Summary:   ConversationSummary(kind, len(msgs)),
		Messages:  msgs,
	}, true
}

// threadEntryID derives a stable entry id. A thread without its own id falls
// back to the grouped label; later id-less threads get an index suffix so ids
// stay unique within one timeline.
func threadEntryID(index int, threadID string) string {
	if threadID != "" {
		return "conversation-" + threadID
	}
	if index == 0 {
		return "conversation-group"
	}
	return fmt.Sprintf("conversation-group-%d", index)
}
