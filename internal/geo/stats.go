package geo

import (
	"example.com/tracking/internal/domain"
)

// Accumulator derives track statistics incrementally from a stream of
// already-validated points. The zero value is ready to use. Feeding the same
// points one at a time produces numbers identical to Compute over the full
// sequence.
type Accumulator struct {
	stats   domain.TrackStats
	elapsed float64
	last    *domain.LocationPoint
}

// Add folds the next point into the running statistics.
func (a *Accumulator) Add(p domain.LocationPoint) {
	a.stats.PointCount++
	if a.last != nil {
		d := Haversine(a.last.Latitude, a.last.Longitude, p.Latitude, p.Longitude)
		a.stats.TotalDistance += d

		// Pairs with non-positive elapsed time contribute distance but are
		// excluded from speed calculations to avoid division artifacts.
		if dt := p.Timestamp.Sub(a.last.Timestamp).Seconds(); dt > 0 {
			a.elapsed += dt
			if speed := d / dt; speed > a.stats.MaxSpeed {
				a.stats.MaxSpeed = speed
			}
		}

		// Only climbs accumulate; descents are ignored, not subtracted.
		if a.last.Altitude != nil && p.Altitude != nil {
			if delta := *p.Altitude - *a.last.Altitude; delta > 0 {
				a.stats.ElevationGain += delta
			}
		}
	}
	prev := p
	a.last = &prev
}

// Stats returns a snapshot of the accumulated statistics. Average speed is
// total distance over total elapsed time, not a mean of per-pair speeds,
// which matters under irregular sampling.
func (a *Accumulator) Stats() domain.TrackStats {
	s := a.stats
	if a.elapsed > 0 {
		s.AverageSpeed = s.TotalDistance / a.elapsed
	}
	return s
}

// ElapsedSeconds reports the accumulated elapsed time across pairs with
// positive elapsed time.
func (a *Accumulator) ElapsedSeconds() float64 {
	return a.elapsed
}

// seed installs a context point without counting it, so a segment can pick
// up the pair that spans its leading boundary.
func (a *Accumulator) seed(p domain.LocationPoint) {
	prev := p
	a.last = &prev
}

// Compute runs a single forward pass over the whole sequence. Fewer than two
// points yield all-zero statistics with PointCount set.
func Compute(points []domain.LocationPoint) domain.TrackStats {
	var acc Accumulator
	for _, p := range points {
		acc.Add(p)
	}
	return acc.Stats()
}

// ComputeSegments applies the same formula independently to contiguous
// chunks of segmentSize points. The last point of each chunk seeds the next
// chunk's accumulator as context, so the pair spanning a boundary is counted
// exactly once and per-segment distances sum to the whole-sequence distance.
// Point counts cover only the chunk's own points.
func ComputeSegments(points []domain.LocationPoint, segmentSize int) []domain.TrackStats {
	if len(points) == 0 {
		return nil
	}
	if segmentSize < 1 {
		segmentSize = 1
	}

	segments := make([]domain.TrackStats, 0, (len(points)+segmentSize-1)/segmentSize)
	for start := 0; start < len(points); start += segmentSize {
		end := start + segmentSize
		if end > len(points) {
			end = len(points)
		}

		var acc Accumulator
		if start > 0 {
			acc.seed(points[start-1])
		}
		for _, p := range points[start:end] {
			acc.Add(p)
		}
		segments = append(segments, acc.Stats())
	}
	return segments
}
