package format

import "testing"

func TestFilterString(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected string
	}{
		{"extension", Ext("webm"), "[ext=webm]"},
		{"height bound", MaxHeight(720), "[height<=720]"},
		{"bitrate bound", MaxAudioBitrate(192), "[abr<=192]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSelectorString(t *testing.T) {
	tests := []struct {
		name     string
		selector Selector
		expected string
	}{
		{
			name:     "bare best audio with fallback",
			selector: Alternatives(Merge(NewStream(BestAudio)), Merge(NewStream(Best))),
			expected: "bestaudio/best",
		},
		{
			name: "merged video and audio with filters",
			selector: Alternatives(
				Merge(
					NewStream(BestVideo, Ext("mp4"), MaxHeight(1080)),
					NewStream(BestAudio, Ext("m4a")),
				),
				Merge(NewStream(Best)),
			),
			expected: "bestvideo[ext=mp4][height<=1080]+bestaudio[ext=m4a]/best",
		},
		{
			name:     "single filtered stream",
			selector: Alternatives(Merge(NewStream(BestAudio, MaxAudioBitrate(64)))),
			expected: "bestaudio[abr<=64]",
		},
		{
			name:     "empty choices are skipped",
			selector: Alternatives(Merge(), Merge(NewStream(Best))),
			expected: "best",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.selector.String(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestStreamWhereDoesNotAlias(t *testing.T) {
	base := NewStream(BestVideo, Ext("mp4"))
	a := base.Where(MaxHeight(480))
	b := base.Where(MaxHeight(720))

	if base.String() != "bestvideo[ext=mp4]" {
		t.Errorf("base stream was modified: %s", base.String())
	}
	if a.String() != "bestvideo[ext=mp4][height<=480]" {
		t.Errorf("unexpected stream a: %s", a.String())
	}
	if b.String() != "bestvideo[ext=mp4][height<=720]" {
		t.Errorf("unexpected stream b: %s", b.String())
	}
}

func TestSelectorIsEmpty(t *testing.T) {
	if !Alternatives().IsEmpty() {
		t.Error("selector without choices should be empty")
	}
	if Alternatives(Merge(NewStream(Best))).IsEmpty() {
		t.Error("selector with a stream should not be empty")
	}
}
