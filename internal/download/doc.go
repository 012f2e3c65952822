package download

// Package download turns a user's selection into yt-dlp options and runs the
// download through github.com/lrstanley/go-ytdlp. Preferences are persisted
// only after a download succeeds.
