package model

// Package model defines the domain values shared across the app: the download
// request and its option enums, the persisted preferences record, invocation
// records, and playlist probe results.
