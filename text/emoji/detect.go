package emoji

// Presentation selectors.
const (
	textSelector  = 0xFE0E
	emojiSelector = 0xFE0F
	zwj           = 0x200D
	keycapMark    = 0x20E3
	blackFlag     = 0x1F3F4
	cancelTag     = 0xE007F
)

// IsEmojiPresentation reports whether r renders as emoji without a
// variation selector (Emoji_Presentation=Yes).
func IsEmojiPresentation(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F5FF: // Misc Symbols and Pictographs
		return true
	case r >= 0x1F600 && r <= 0x1F64F: // Emoticons
		return true
	case r >= 0x1F680 && r <= 0x1F6FF: // Transport and Map
		return true
	case r >= 0x1F900 && r <= 0x1FAFF: // Supplemental and Extended-A/B
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // Regional indicators
		return true
	case r == 0x1F004 || r == 0x1F0CF || r == 0x1F18E:
		return true
	case r >= 0x1F191 && r <= 0x1F19A:
		return true
	case r == 0x231A || r == 0x231B || r == 0x23F0 || r == 0x23F3:
		return true
	case r >= 0x23E9 && r <= 0x23EC:
		return true
	case r == 0x2614 || r == 0x2615 || r == 0x267F || r == 0x2693 || r == 0x26A1:
		return true
	case r >= 0x2648 && r <= 0x2653: // Zodiac
		return true
	case r == 0x26AA || r == 0x26AB || r == 0x26BD || r == 0x26BE || r == 0x26C4 || r == 0x26C5:
		return true
	case r == 0x26CE || r == 0x26D4 || r == 0x26EA || r == 0x26F2 || r == 0x26F3 || r == 0x26F5:
		return true
	case r == 0x26FA || r == 0x26FD || r == 0x2705 || r == 0x270A || r == 0x270B || r == 0x2728:
		return true
	case r == 0x274C || r == 0x274E || r == 0x2757 || r == 0x27B0 || r == 0x27BF:
		return true
	case r >= 0x2753 && r <= 0x2755:
		return true
	case r >= 0x2795 && r <= 0x2797:
		return true
	case r == 0x2B1B || r == 0x2B1C || r == 0x2B50 || r == 0x2B55:
		return true
	}
	return false
}

// IsEmoji reports whether r can be displayed as emoji, either by default or
// when followed by U+FE0F.
func IsEmoji(r rune) bool {
	return IsEmojiPresentation(r) || isTextDefaultEmoji(r)
}

// isTextDefaultEmoji covers Emoji=Yes, Emoji_Presentation=No characters:
// they stay text unless an emoji selector follows them.
func isTextDefaultEmoji(r rune) bool {
	switch {
	case r >= 0x2600 && r <= 0x27BF: // Misc Symbols and Dingbats
		return true
	case r >= 0x2194 && r <= 0x2199, r == 0x21A9, r == 0x21AA:
		return true
	case r == 0x00A9 || r == 0x00AE || r == 0x203C || r == 0x2049 || r == 0x2122 || r == 0x2139:
		return true
	case r >= 0x2934 && r <= 0x2935, r >= 0x2B05 && r <= 0x2B07:
		return true
	case r == 0x3030 || r == 0x303D || r == 0x3297 || r == 0x3299:
		return true
	case r >= 0x1F170 && r <= 0x1F251: // Enclosed alphanumerics and ideographs
		return true
	}
	return false
}

// IsModifier reports whether r is a Fitzpatrick skin tone modifier.
func IsModifier(r rune) bool {
	return r >= 0x1F3FB && r <= 0x1F3FF
}

// IsRegionalIndicator reports whether r is one of the flag letters A-Z.
func IsRegionalIndicator(r rune) bool {
	return r >= 0x1F1E6 && r <= 0x1F1FF
}

// IsKeycapBase reports whether r can start a keycap sequence.
func IsKeycapBase(r rune) bool {
	return (r >= '0' && r <= '9') || r == '#' || r == '*'
}

func isTag(r rune) bool {
	return r >= 0xE0020 && r <= 0xE007E
}
