// Package ui contains the Fyne window of the player. It renders controller
// snapshots and forwards user input to the controller. All UI strings are
// localized via Localization.
package ui
