// Package playback owns the single media-engine session of the player. The
// Engine interface lets the controller bind, replace and stop a remote audio
// source; BeepEngine implements it by streaming MP3 over HTTP into the
// faiface/beep speaker. Engine outcomes are reported asynchronously as Events.
package playback
