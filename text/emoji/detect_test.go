package emoji

import "testing"

func TestIsEmojiPresentation(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{'A', false},
		{' ', false},
		{0x1F600, true}, // grinning face
		{0x1F680, true}, // rocket
		{0x1F1FA, true}, // regional indicator U
		{0x2615, true},  // hot beverage
		{0x263A, false}, // white smiling face, text by default
		{0x2764, false}, // heavy black heart, text by default
		{0x00A9, false}, // copyright sign
	}

	for _, tt := range tests {
		if got := IsEmojiPresentation(tt.r); got != tt.want {
			t.Errorf("IsEmojiPresentation(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsEmoji(t *testing.T) {
	for _, r := range []rune{0x263A, 0x2764, 0x00A9, 0x1F600} {
		if !IsEmoji(r) {
			t.Errorf("IsEmoji(%U) = false, want true", r)
		}
	}
	for _, r := range []rune{'a', '1', 0x05D0, 0x4E00} {
		if IsEmoji(r) {
			t.Errorf("IsEmoji(%U) = true, want false", r)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !IsModifier(0x1F3FD) || IsModifier(0x1F3FA) {
		t.Error("IsModifier range mismatch")
	}
	if !IsRegionalIndicator(0x1F1E6) || IsRegionalIndicator(0x1F200) {
		t.Error("IsRegionalIndicator range mismatch")
	}
	if !IsKeycapBase('#') || !IsKeycapBase('7') || IsKeycapBase('a') {
		t.Error("IsKeycapBase mismatch")
	}
}
