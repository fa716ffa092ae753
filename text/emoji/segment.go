package emoji

// Run is a half-open rune range [Start, End) with uniform presentation.
type Run struct {
	Start, End int
	Emoji      bool
}

// Segment splits text[start:end] into alternating text and emoji runs.
// Offsets in the returned runs index into text. An empty range yields nil.
func Segment(text []rune, start, end int) []Run {
	if start < 0 {
		start = 0
	}
	if end > len(text) {
		end = len(text)
	}
	if start >= end {
		return nil
	}

	var runs []Run
	push := func(s, e int, isEmoji bool) {
		if n := len(runs); n > 0 && runs[n-1].Emoji == isEmoji && runs[n-1].End == s {
			runs[n-1].End = e
			return
		}
		runs = append(runs, Run{Start: s, End: e, Emoji: isEmoji})
	}

	for i := start; i < end; {
		if n := sequenceLen(text[i:end]); n > 0 {
			push(i, i+n, true)
			i += n
			continue
		}
		push(i, i+1, false)
		i++
	}
	return runs
}

// sequenceLen returns the length of the emoji sequence starting at s[0],
// or 0 when s[0] is presented as text.
func sequenceLen(s []rune) int {
	r := s[0]

	switch {
	case IsRegionalIndicator(r):
		if len(s) >= 2 && IsRegionalIndicator(s[1]) {
			return 2
		}
		return 1
	case r == blackFlag:
		if n := tagSequenceLen(s); n > 0 {
			return n
		}
	case IsKeycapBase(r):
		return keycapLen(s)
	}

	n := elementLen(s)
	if n == 0 {
		return 0
	}
	for n+1 < len(s) && s[n] == zwj {
		next := elementLen(s[n+1:])
		if next == 0 && !IsEmoji(s[n+1]) {
			break
		}
		if next == 0 {
			next = 1
		}
		n += 1 + next
	}
	return n
}

// elementLen measures a single emoji with its optional selector and
// modifier. Text-default characters count only with an explicit U+FE0F.
func elementLen(s []rune) int {
	if len(s) == 0 {
		return 0
	}
	r := s[0]
	n := 1
	switch {
	case len(s) > 1 && s[1] == textSelector:
		return 0
	case len(s) > 1 && s[1] == emojiSelector:
		if !IsEmoji(r) {
			return 0
		}
		n = 2
	case len(s) > 1 && IsModifier(s[1]) && IsEmoji(r):
		n = 2
	case !IsEmojiPresentation(r):
		return 0
	}
	if n < len(s) && IsModifier(s[n]) {
		n++
	}
	return n
}

// keycapLen matches base [FE0F] 20E3.
func keycapLen(s []rune) int {
	i := 1
	if i < len(s) && s[i] == emojiSelector {
		i++
	}
	if i < len(s) && s[i] == keycapMark {
		return i + 1
	}
	return 0
}

// tagSequenceLen matches BLACK FLAG, tag characters, CANCEL TAG.
func tagSequenceLen(s []rune) int {
	i := 1
	for i < len(s) && isTag(s[i]) {
		i++
	}
	if i > 1 && i < len(s) && s[i] == cancelTag {
		return i + 1
	}
	return 0
}
