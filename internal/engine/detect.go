package engine

// Transcript language detection. Pure rune counting, no IO — the prompt
// builder only needs to know whether to inject a translation instruction,
// not the precise language.

// DetectTranscriptLanguage classifies transcript text as "ko" or "en" by
// comparing counts of Hangul-range vs Latin-range characters. Returns ""
// when the text contains neither (the builder then skips translation).
func DetectTranscriptLanguage(text string) string {
	var hangul, latin int
	for _, r := range text {
		switch {
		case r >= 0xAC00 && r <= 0xD7A3, // Hangul syllables
			r >= 0x1100 && r <= 0x11FF, // Hangul jamo
			r >= 0x3130 && r <= 0x318F: // compatibility jamo
			hangul++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	switch {
	case hangul == 0 && latin == 0:
		return ""
	case hangul > latin:
		return "ko"
	default:
		return "en"
	}
}
