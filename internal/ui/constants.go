package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconBook     = "📖"
	IconPlay     = "▶"
	IconStop     = "⏹"
	IconNext     = "⏭"
	IconDownload = "⬇"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	CreditTextSize float32 = 16
)
