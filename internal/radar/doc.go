// Package radar maps raw KPI values onto bounded 0-100 health scores for
// the five canonical dashboard dimensions: contribution margin ratio,
// time-progress achievement rate, loss ratio, matured claim ratio and
// expense ratio.
//
// Each dimension carries an ordered list of half-open numeric bands; a
// matched band yields a level tag and a score interpolated linearly inside
// the band's score range, so scores move smoothly and monotonically with
// the input instead of stepping at band edges. Higher-is-better dimensions
// (contribution margin, time progress) and lower-is-better dimensions
// (loss, claim and expense ratios) use oppositely directed score ranges.
// A nil input produces a nil score, never a silent zero.
//
// The package also derives threshold-based action items from KPI results,
// mirroring the advisory text of the weekly board report.
package radar
