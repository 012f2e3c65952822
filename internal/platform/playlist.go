package platform

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yoinktube/internal/model"
)

// Timeout constants
const (
	DefaultProbeTimeout = 30 * time.Second
)

// URL parameters and templates
const (
	PlaylistParam           = "list"
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// FetchFunc lists the entries of a playlist by ID
type FetchFunc func(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error)

// PlaylistProbe counts playlist entries before a download starts
type PlaylistProbe struct {
	timeout time.Duration
	fetch   FetchFunc
}

// NewPlaylistProbe creates a probe backed by the ytdlp library
func NewPlaylistProbe() *PlaylistProbe {
	return &PlaylistProbe{
		timeout: DefaultProbeTimeout,
		fetch:   fetchWithYTDLP,
	}
}

// SetTimeout sets the timeout for probe operations
func (p *PlaylistProbe) SetTimeout(timeout time.Duration) {
	p.timeout = timeout
}

// Probe lists the entries of the playlist referenced by rawURL
func (p *PlaylistProbe) Probe(ctx context.Context, rawURL string) (*model.Playlist, error) {
	playlistID, err := ExtractPlaylistID(rawURL)
	if err != nil {
		return nil, err
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	entries, err := p.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	return &model.Playlist{
		ID:      playlistID,
		URL:     rawURL,
		Entries: entries,
	}, nil
}

// IsPlaylistURL reports whether rawURL carries a playlist ID
func IsPlaylistURL(rawURL string) bool {
	_, err := ExtractPlaylistID(rawURL)
	return err == nil
}

// ExtractPlaylistID returns the value of the list= query parameter.
// Supported forms include:
//   - https://www.youtube.com/playlist?list=PLAYLIST_ID
//   - https://www.youtube.com/watch?v=VIDEO_ID&list=PLAYLIST_ID&index=2
func ExtractPlaylistID(rawURL string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}

	playlistID := parsed.Query().Get(PlaylistParam)
	if playlistID == "" {
		return "", fmt.Errorf("URL does not contain playlist parameter: %s", rawURL)
	}
	return playlistID, nil
}

// fetchWithYTDLP lists playlist items through the ytdlp library
func fetchWithYTDLP(ctx context.Context, playlistID string) ([]model.PlaylistEntry, error) {
	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	entries := make([]model.PlaylistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, model.PlaylistEntry{
			VideoID: it.VideoID,
			Title:   it.Title,
			URL:     fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return entries, nil
}
