package coeffs

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Transform overwrites every component at every coefficient multi-index
// with f evaluated at the coefficient's relative position
// (i_d/(ncoeffs_d-1))_d. f must return geoDim values and must be safe for
// concurrent calls: the grid is partitioned across workers, each writing
// a disjoint flat range.
//
// Transform is a phase boundary: no concurrent evaluation may overlap it
// on the same Store.
func (s *Store) Transform(f func(pos []float64) []float64) {
	workers := runtime.GOMAXPROCS(0)
	if workers > s.total {
		workers = s.total
	}
	if workers <= 1 {
		s.transformRange(0, s.total, f)
		return
	}

	var g errgroup.Group
	chunk := (s.total + workers - 1) / workers
	for lo := 0; lo < s.total; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > s.total {
			hi = s.total
		}
		g.Go(func() error {
			s.transformRange(lo, hi, f)
			return nil
		})
	}
	// Workers never return errors; Wait is the join point.
	_ = g.Wait()
}

func (s *Store) transformRange(lo, hi int, f func(pos []float64) []float64) {
	d := len(s.ncoeffs)
	idx := make([]int, d)
	pos := make([]float64, d)

	for flat := lo; flat < hi; flat++ {
		rem := flat
		for i := d - 1; i >= 0; i-- {
			idx[i] = rem % s.ncoeffs[i]
			rem /= s.ncoeffs[i]
		}
		for i := 0; i < d; i++ {
			if s.ncoeffs[i] > 1 {
				pos[i] = float64(idx[i]) / float64(s.ncoeffs[i]-1)
			} else {
				pos[i] = 0
			}
		}

		c := f(pos)
		for comp := 0; comp < s.geoDim; comp++ {
			s.data[comp][flat] = c[comp]
		}
	}
}
