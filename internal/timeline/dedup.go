package timeline

import (
	"strings"

	"github.com/DustinYates/cheatah-sub002/internal/models"
)

// DedupCalls returns the subset of raw voice calls worth materializing as
// timeline entries, in input order. A record whose call_id was already seen
// is dropped silently, as is a record with no date at all - both are expected
// data-quality gaps, not failures. Records without a stable id are kept
// unconditionally; no content-based matching is attempted for them. The seen
// set is built fresh per invocation so the package stays reentrant.
func DedupCalls(calls []models.VoiceCall) []models.VoiceCall {
	if len(calls) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(calls))
	out := make([]models.VoiceCall, 0, len(calls))
	for _, call := range calls {
		if strings.TrimSpace(call.CallDate) == "" {
			continue
		}
		if call.HasStableID() {
			if _, dup := seen[call.CallID]; dup {
				continue
			}
			seen[call.CallID] = struct{}{}
		}
		out = append(out, call)
	}
	return out
}
