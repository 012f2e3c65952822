package ui

import "time"

// Window
const (
	WindowTitle          = "YoinkTube - YouTube Downloader"
	WindowWidth  float32 = 500
	WindowHeight float32 = 400
)

// Labels
const (
	LabelURL          = "URL:"
	LabelOutputDir    = "Output Directory:"
	LabelChooseDir    = "Choose Directory"
	LabelOpenDir      = "Open"
	LabelAudioOnly    = "Download Audio Only (MP3)"
	LabelAudioBitrate = "Audio Bitrate (kbps):"
	LabelFormat       = "Format:"
	LabelQuality      = "Video Quality:"
	LabelDownload     = "Download"
	LabelDownloading  = "Downloading..."
	LabelHistory      = "History"
	PlaceholderURL    = "https://www.youtube.com/watch?v=..."
)

// Dialog titles and messages
const (
	TitleWarning    = "Warning"
	TitleSuccess    = "Success"
	TitlePlaylist   = "Playlist"
	TitleHistory    = "Recent Downloads"
	MsgCompleted    = "Download Completed Successfully"
	MsgPlaylistFmt  = "This link is a playlist with %d videos. Download all of them?"
	MsgNoHistory    = "No downloads yet"
	MsgSelectDirErr = "Selected directory is not usable: %v"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	IconFolder         = "📁"
	IconHistory        = "🕘"
)

// History dialog
const (
	HistoryLimit         = 50
	HistoryDialogWidth   = 460
	HistoryDialogHeight  = 320
	HistoryQueryTimeout  = 5 * time.Second
	PlaylistProbeTimeout = 20 * time.Second
)
