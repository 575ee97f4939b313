package model

import "strconv"

// Chapter is a single catalog record: one surah and the audio to play for it
type Chapter struct {
	ID    int    `json:"id" yaml:"id" validate:"required,gt=0"`
	Name  string `json:"name" yaml:"name" validate:"required"`
	Audio string `json:"audio" yaml:"audio" validate:"required,http_url"`

	// Recitations optionally maps a reciter name to an alternate audio URL.
	// Reciters without an entry fall back to Audio.
	Recitations map[string]string `json:"recitations,omitempty" yaml:"recitations,omitempty" validate:"omitempty,dive,keys,required,endkeys,required,http_url"`
}

// Label returns the selector entry for the chapter, e.g. "1: Al-Fatiha"
func (c Chapter) Label() string {
	return strconv.Itoa(c.ID) + ": " + c.Name
}

// AudioFor returns the audio URL for the given reciter, or Audio when the
// catalog has no dedicated recitation for that reciter
func (c Chapter) AudioFor(reciter string) string {
	if url, ok := c.Recitations[reciter]; ok && url != "" {
		return url
	}
	return c.Audio
}
