package platform

// Package platform contains OS integration and external tooling glue:
// filesystem helpers, opening folders in the file manager, and playlist
// probing through the ytdlp library.
