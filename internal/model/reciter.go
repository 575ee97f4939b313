package model

// Reciters offered in the reciter selector. The set is closed.
const (
	ReciterAbdulBasit = "Abdul Basit Abdul Samad"
	ReciterAlafasy    = "Mishary Rashid Alafasy"
	ReciterAlGhamdi   = "Saad Al-Ghamdi"
)

// DefaultReciters returns the reciter labels in display order
func DefaultReciters() []string {
	return []string{ReciterAbdulBasit, ReciterAlafasy, ReciterAlGhamdi}
}

// IsReciter reports whether name belongs to the closed reciter set
func IsReciter(name string) bool {
	for _, r := range DefaultReciters() {
		if r == name {
			return true
		}
	}
	return false
}
