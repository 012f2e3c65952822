package model

// PlaylistEntry is a single video found while probing a playlist
type PlaylistEntry struct {
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
}

// Playlist is the result of probing a playlist URL before downloading it
type Playlist struct {
	ID      string          `json:"id"`
	URL     string          `json:"url"`
	Entries []PlaylistEntry `json:"entries"`
}

// Len returns the number of entries found
func (p *Playlist) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Entries)
}

// IsEmpty reports whether the probe found no entries
func (p *Playlist) IsEmpty() bool {
	return p.Len() == 0
}
