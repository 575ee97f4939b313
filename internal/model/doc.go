package model

// Package model defines domain data structures used across the app: catalog
// chapters, the closed set of reciters, and playback status enums. Values are
// plain data so the state reducer and the UI can copy them freely.
