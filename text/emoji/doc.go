// Package emoji classifies runes and rune ranges by emoji presentation.
//
// The shaping engine uses Segment to find the parts of a span that should be
// resolved against a color emoji family first, so that pictographs do not
// fall back to monochrome symbol glyphs from the text font.
//
// Multi-codepoint sequences (ZWJ sequences, skin tone modifiers, keycaps,
// regional indicator flags and subdivision tag flags) are never split.
package emoji
