package notes

import (
	"fmt"
	"log/slog"

	"github.com/reallygood83/yt-trend-sub000/internal/engine"
)

// Coverage validation is advisory: warnings annotate the note and are
// logged, but never fail a request.

const (
	minCoverageRatio = 0.8
	maxSegmentGapSec = 5.0
)

// ValidateCoverage checks how well the note's segment timeline covers the
// video and returns human-readable warnings. Mind-map notes carry a branch
// tree instead of a timeline, so segment checks are skipped for them.
func ValidateCoverage(note *engine.Note, durationSeconds float64) []string {
	if note == nil || note.Method == engine.MethodMindMap {
		return nil
	}

	var warnings []string
	segs := note.Segments

	if len(segs) == 0 {
		warnings = append(warnings, "note has no segments to cover the video")
	} else {
		if segs[0].Start != 0 {
			warnings = append(warnings,
				fmt.Sprintf("first segment starts at %.0fs, not at the beginning of the video", segs[0].Start))
		}

		for i := 1; i < len(segs); i++ {
			gap := segs[i].Start - segs[i-1].End
			if gap > maxSegmentGapSec {
				warnings = append(warnings,
					fmt.Sprintf("gap of %.0fs between segments %d and %d (%.0fs-%.0fs)",
						gap, i, i+1, segs[i-1].End, segs[i].Start))
			}
		}

		if durationSeconds > 0 {
			covered := segs[len(segs)-1].End / durationSeconds
			if covered < minCoverageRatio {
				warnings = append(warnings,
					fmt.Sprintf("segments cover only %.0f%% of the %.0fs video", covered*100, durationSeconds))
			}
		}
	}

	for _, w := range warnings {
		engine.IncrCoverageWarnings()
		slog.Warn("coverage check",
			slog.String("video", note.Video.VideoID),
			slog.String("method", string(note.Method)),
			slog.String("warning", w))
	}
	return warnings
}
