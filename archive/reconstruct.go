package archive

import (
	"fmt"

	"github.com/webmeld/snapdiff/errs"
)

// Reconstruct regenerates a capture list from an archive by walking the
// date tree in order.
//
// The result equals the original input of Compress up to reordering of
// captures that interleaved across different days; within a single day the
// original relative order is preserved exactly. The cross-day loss is a
// documented property of the archive, not an error.
//
// Returns errs.ErrInvalidHashID if an entry references an id outside the
// hash dictionary.
func Reconstruct(a *Archive) ([]Capture, error) {
	captures := make([]Capture, 0, a.Len())

	for _, y := range a.Captures {
		for _, m := range y.Months {
			for _, d := range m.Days {
				for _, e := range d.Entries {
					if e.HashID < 0 || e.HashID >= len(a.Hashes) {
						return nil, fmt.Errorf("%w: id %d with %d known hashes", errs.ErrInvalidHashID, e.HashID, len(a.Hashes))
					}
					captures = append(captures, Capture{
						Timestamp: fmt.Sprintf("%04d%02d%02d%s", y.Year, m.Month, d.Day, e.Suffix),
						Hash:      a.Hashes[e.HashID],
					})
				}
			}
		}
	}

	return captures, nil
}
