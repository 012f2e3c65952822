package model

import "testing"

func TestVideoQuality_MaxHeight(t *testing.T) {
	tests := []struct {
		quality  VideoQuality
		expected int
	}{
		{QualityHighest, 0},
		{Quality480p, 480},
		{Quality720p, 720},
		{Quality1080p, 1080},
		{VideoQuality("4k"), 0},
		{VideoQuality(""), 0},
	}

	for _, test := range tests {
		if got := test.quality.MaxHeight(); got != test.expected {
			t.Errorf("VideoQuality(%q).MaxHeight() = %d, expected %d", test.quality, got, test.expected)
		}
	}
}

func TestAudioBitrate_Kbps(t *testing.T) {
	tests := []struct {
		bitrate    AudioBitrate
		expected   int
		expectedOK bool
	}{
		{BitrateHighest, 0, false},
		{Bitrate64, 64, true},
		{Bitrate192, 192, true},
		{Bitrate320, 320, true},
		{AudioBitrate("fast"), 0, false},
		{AudioBitrate("-5"), 0, false},
	}

	for _, test := range tests {
		kbps, ok := test.bitrate.Kbps()
		if kbps != test.expected || ok != test.expectedOK {
			t.Errorf("AudioBitrate(%q).Kbps() = (%d, %v), expected (%d, %v)",
				test.bitrate, kbps, ok, test.expected, test.expectedOK)
		}
	}
}

func TestContainer_IsValid(t *testing.T) {
	for _, c := range Containers() {
		if !c.IsValid() {
			t.Errorf("Container %q should be valid", c)
		}
	}
	if Container("avi").IsValid() {
		t.Error("Container avi should not be valid")
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if prefs.OutputDir != "" {
		t.Errorf("Expected empty output dir, got %q", prefs.OutputDir)
	}
	if prefs.Format != ContainerMP4 {
		t.Errorf("Expected format mp4, got %q", prefs.Format)
	}
	if prefs.Quality != QualityHighest {
		t.Errorf("Expected quality %q, got %q", QualityHighest, prefs.Quality)
	}
	if prefs.AudioBitrate != BitrateHighest {
		t.Errorf("Expected bitrate %q, got %q", BitrateHighest, prefs.AudioBitrate)
	}
	if prefs.AudioOnly {
		t.Error("Expected audio only to default to false")
	}
}

func TestPreferencesRequestRoundTrip(t *testing.T) {
	prefs := Preferences{
		OutputDir:    "/tmp/out",
		Format:       ContainerWebM,
		Quality:      Quality720p,
		AudioBitrate: Bitrate192,
		AudioOnly:    true,
	}

	req := prefs.Request("https://x")
	if req.URL != "https://x" {
		t.Errorf("Expected URL to be carried, got %q", req.URL)
	}
	if req.Preferences() != prefs {
		t.Errorf("Expected %+v, got %+v", prefs, req.Preferences())
	}
}

func TestSelectableOptionsOrder(t *testing.T) {
	qualities := VideoQualities()
	if len(qualities) != 4 || qualities[0] != QualityHighest {
		t.Errorf("Unexpected quality options: %v", qualities)
	}

	bitrates := AudioBitrates()
	if len(bitrates) != 6 || bitrates[0] != BitrateHighest || bitrates[5] != Bitrate320 {
		t.Errorf("Unexpected bitrate options: %v", bitrates)
	}
}
