package format

// Package format models yt-dlp format selector expressions as structured
// values (streams, filter predicates, merges and fallbacks) and renders them
// to yt-dlp's textual selector syntax.
