package timeline

import "testing"

func TestClassifyChannel(t *testing.T) {
	tests := []struct {
		label string
		want  EntryType
	}{
		{"sms", TypeSMS},
		{"text", TypeSMS},
		{"SMS", TypeSMS},
		{"  Text  ", TypeSMS},
		{"email", TypeEmail},
		{"form", TypeEmail},
		{"web_form", TypeEmail},
		{"contact_form", TypeEmail},
		{"Web_Form", TypeEmail},
		{"web", TypeChatbot},
		{"webchat", TypeChatbot},
		{"whatsapp", TypeChatbot},
		{"", TypeChatbot},
		{"   ", TypeChatbot},
	}

	for _, tt := range tests {
		t.Run("label "+tt.label, func(t *testing.T) {
			if got := ClassifyChannel(tt.label); got != tt.want {
				t.Errorf("ClassifyChannel(%q) = %q, want %q", tt.label, got, tt.want)
			}
		})
	}
}
