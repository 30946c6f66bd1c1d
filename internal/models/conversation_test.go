package models

import "testing"

func TestConversationFetchResultThreads(t *testing.T) {
	tests := []struct {
		name        string
		result      *ConversationFetchResult
		wantThreads int
		wantChannel string
	}{
		{
			name:        "nil result",
			result:      nil,
			wantThreads: 0,
		},
		{
			name:        "empty result",
			result:      &ConversationFetchResult{},
			wantThreads: 0,
		},
		{
			name: "conversations list wins",
			result: &ConversationFetchResult{
				Conversations: []ConversationThread{
					{ID: "t1", Channel: "sms"},
					{ID: "t2", Channel: "web"},
				},
				Messages: []Message{{Role: "user", Content: "ignored"}},
			},
			wantThreads: 2,
			wantChannel: "sms",
		},
		{
			name: "legacy flat shape becomes one implicit thread",
			result: &ConversationFetchResult{
				Channel:  "web",
				Messages: []Message{{Role: "user", Content: "hi"}},
			},
			wantThreads: 1,
			wantChannel: "web",
		},
		{
			name: "present but empty conversations list",
			result: &ConversationFetchResult{
				Conversations: []ConversationThread{},
			},
			wantThreads: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			threads := tt.result.Threads()
			if len(threads) != tt.wantThreads {
				t.Fatalf("Threads() returned %d threads, want %d", len(threads), tt.wantThreads)
			}
			if tt.wantThreads > 0 && threads[0].Channel != tt.wantChannel {
				t.Errorf("Threads()[0].Channel = %q, want %q", threads[0].Channel, tt.wantChannel)
			}
		})
	}
}

func TestVoiceCallHasStableID(t *testing.T) {
	if (VoiceCall{}).HasStableID() {
		t.Error("call without call_id should not report a stable id")
	}
	if !(VoiceCall{CallID: "c1"}).HasStableID() {
		t.Error("call with call_id should report a stable id")
	}
}
