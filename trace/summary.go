package trace

import (
	"io"
	"math"
	"sort"
)

// ActorSummary is the travel of one actor across a trace
type ActorSummary struct {
	Name      string
	Distance  float64 // summed x/z path length
	MinX      float64
	MaxX      float64
	MinZ      float64
	MaxZ      float64
	MorphedAt float64 // scene seconds, -1 if never
}

// Summary aggregates a trace for inspection
type Summary struct {
	Frames   int
	Duration float64
	Views    map[string]int // frames spent nearest each viewpoint
	Ripples  int            // frames with at least one active ripple
	Actors   []ActorSummary
}

// Summarize reads r to the end
func Summarize(r *Reader) (Summary, error) {
	s := Summary{Views: make(map[string]int)}
	index := make(map[string]int)
	last := make(map[string][3]float64)
	var start float64

	for {
		f, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return s, err
		}

		if s.Frames == 0 {
			start = f.Time
		}
		s.Frames++
		s.Duration = f.Time - start
		s.Views[f.Camera.View]++
		for _, rf := range f.Ripples {
			if rf.Active > 0 {
				s.Ripples++
				break
			}
		}

		for _, af := range f.Actors {
			i, ok := index[af.Name]
			if !ok {
				i = len(s.Actors)
				index[af.Name] = i
				s.Actors = append(s.Actors, ActorSummary{
					Name: af.Name,
					MinX: af.Position[0], MaxX: af.Position[0],
					MinZ: af.Position[2], MaxZ: af.Position[2],
					MorphedAt: -1,
				})
			}
			a := &s.Actors[i]
			if p, seen := last[af.Name]; seen {
				a.Distance += math.Hypot(af.Position[0]-p[0], af.Position[2]-p[2])
			}
			last[af.Name] = af.Position
			a.MinX = math.Min(a.MinX, af.Position[0])
			a.MaxX = math.Max(a.MaxX, af.Position[0])
			a.MinZ = math.Min(a.MinZ, af.Position[2])
			a.MaxZ = math.Max(a.MaxZ, af.Position[2])
			if af.Morphed && a.MorphedAt < 0 {
				a.MorphedAt = f.Time
			}
		}
	}

	sort.Slice(s.Actors, func(i, j int) bool { return s.Actors[i].Name < s.Actors[j].Name })
	return s, nil
}
