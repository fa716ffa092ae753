package imagetext

import "github.com/gogpu/imagetext/text"

// measuredWidth is the widest line of runs.
func measuredWidth(runs []text.LayoutRun) float32 {
	var w float32
	for _, r := range runs {
		w = max(w, r.LineW)
	}
	return w
}

// measuredHeight is the number of lines times the buffer line height.
// Spans with their own line height do not change it.
func measuredHeight(runs []text.LayoutRun, m text.Metrics) float32 {
	return float32(len(runs)) * m.LineHeight
}

// measure returns the extent of a laid out buffer.
func measure(buf *text.Buffer) (width, height float32) {
	runs := buf.LayoutRuns()
	return measuredWidth(runs), measuredHeight(runs, buf.Metrics())
}
