package timeline

import (
	"sort"
	"strconv"

	"github.com/DustinYates/cheatah-sub002/internal/models"
)

// Assemble merges a lead's voice calls with its conversation threads into one
// timeline sorted most-recent first. Either source may be partial or missing:
// conv is nil when the conversation fetch failed, and malformed records are
// excluded one by one rather than failing the whole request. The lead itself
// must be non-nil; surfacing its absence is the caller's job.
func Assemble(lead *models.Lead, conv *models.ConversationFetchResult) []Entry {
	calls := DedupCalls(lead.ExtraData.VoiceCalls)

	entries := make([]Entry, 0, len(calls))
	for i, call := range calls {
		if entry, ok := callEntry(i, call); ok {
			entries = append(entries, entry)
		}
	}
	entries = append(entries, GroupThreads(conv)...)

	// Stable sort so equal timestamps keep concatenation order: voice calls
	// before conversations, each source in its own order.
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Timestamp.After(entries[b].Timestamp)
	})
	return entries
}

// callEntry materializes one surviving voice call. A call whose date fails to
// parse even after normalization is excluded here; entries are never inserted
// with a sentinel timestamp.
func callEntry(index int, call models.VoiceCall) (Entry, bool) {
	ts, ok := ParseTimestamp(call.CallDate)
	if !ok {
		return Entry{}, false
	}
	return Entry{
		ID:        callEntryID(index, call),
		Type:      TypeVoiceCall,
		Timestamp: ts,
		Summary:   CallSummary(call),
		Call: &CallDetails{
			CallerName:   call.CallerName,
			CallerEmail:  call.CallerEmail,
			CallerIntent: call.CallerIntent,
			Summary:      call.Summary,
			Transcript:   call.Transcript,
		},
	}, true
}

func callEntryID(index int, call models.VoiceCall) string {
	if call.HasStableID() {
		return "voice-" + call.CallID
	}
	return "voice-" + strconv.Itoa(index)
}

// Presence scans an assembled timeline once and reports which channels occur.
func Presence(entries []Entry) ChannelPresence {
	var p ChannelPresence
	for _, e := range entries {
		switch e.Type {
		case TypeVoiceCall:
			p.HasVoiceCalls = true
		case TypeSMS:
			p.HasSMS = true
		case TypeEmail:
			p.HasEmail = true
		case TypeChatbot:
			p.HasChatbot = true
		}
	}
	return p
}
