package ui

// Package ui contains the Fyne-based desktop front end. It collects the
// user's selection, hands it to the download service, and reports the
// outcome in dialogs. It holds no download logic of its own.
