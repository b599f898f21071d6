package messages

import (
	"errors"
	"testing"
)

func TestParseMessageURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Reference
	}{
		{
			name:  "canonical link",
			input: "https://discord.com/channels/111111111111111111/222222222222222222/333333333333333333",
			want: Reference{
				GuildID:   "111111111111111111",
				ChannelID: "222222222222222222",
				MessageID: "333333333333333333",
			},
		},
		{
			name:  "ptb link",
			input: "https://ptb.discord.com/channels/1/2/3",
			want:  Reference{GuildID: "1", ChannelID: "2", MessageID: "3"},
		},
		{
			name:  "surrounding whitespace",
			input: "  https://discord.com/channels/10/20/30  ",
			want:  Reference{GuildID: "10", ChannelID: "20", MessageID: "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseBareID(t *testing.T) {
	got, err := Parse("444444444444444444")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	want := Reference{MessageID: "444444444444444444"}
	if got != want {
		t.Errorf("Parse bare ID = %+v, want %+v", got, want)
	}
}

func TestParseEmpty(t *testing.T) {
	if _, err := Parse("   "); !errors.Is(err, ErrEmptyReference) {
		t.Errorf("expected ErrEmptyReference, got %v", err)
	}
}
