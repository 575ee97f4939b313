package platform

// Package platform contains OS/platform integration: handing audio URLs to the
// host's default handler through fyne or the OS open command.
