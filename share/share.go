// Package share turns base-encoded share records into sample points and picks
// the ones used for interpolation.
package share

import (
	"fmt"
	"math/big"
	"sort"

	"github.com/sgostarter/libshares/lagrange"
	"github.com/sgostarter/libshares/radix"
)

// Record is one share as it comes out of a document: the abscissa and the
// ordinate written in base Base.
type Record struct {
	X     *big.Int
	Base  int
	Value string
}

func NewRecord(x int64, base int, value string) Record {
	return Record{
		X:     big.NewInt(x),
		Base:  base,
		Value: value,
	}
}

type Sample struct {
	Record Record
	Point  lagrange.Point
}

func recordX(r Record) string {
	if r.X == nil {
		return "<nil>"
	}

	return r.X.String()
}

func DecodeRecord(r Record) (point lagrange.Point, err error) {
	if r.X == nil {
		err = &RecordError{X: recordX(r), Err: ErrBadShare}

		return
	}

	y, err := radix.Decode(r.Value, r.Base)
	if err != nil {
		err = &RecordError{X: recordX(r), Err: err}

		return
	}

	point = lagrange.Point{
		X: new(big.Int).Set(r.X),
		Y: y,
	}

	return
}

// Select decodes and returns k samples. By default the k smallest abscissas are
// used, ties keep document order.
func Select(records []Record, k int, options ...Option) (samples []Sample, err error) {
	if k <= 0 {
		err = ErrInvalidThreshold

		return
	}

	opts := optionNew(options...)

	candidates := make([]Record, len(records))
	copy(candidates, records)

	if !opts.documentOrder {
		sort.SliceStable(candidates, func(i, j int) bool {
			if candidates[i].X == nil || candidates[j].X == nil {
				return candidates[j].X == nil && candidates[i].X != nil
			}

			return candidates[i].X.Cmp(candidates[j].X) < 0
		})
	}

	seen := make(map[string]*big.Int)

	for _, r := range candidates {
		if len(samples) >= k {
			break
		}

		point, e := DecodeRecord(r)
		if e != nil {
			if opts.skipInvalid {
				continue
			}

			err = e

			return nil, err
		}

		if opts.dedup {
			key := point.X.String()

			if y, ok := seen[key]; ok {
				if y.Cmp(point.Y) != 0 {
					err = &RecordError{X: key, Err: ErrInconsistentRecords}

					return nil, err
				}

				continue
			}

			seen[key] = point.Y
		}

		samples = append(samples, Sample{
			Record: r,
			Point:  point,
		})
	}

	if len(samples) < k {
		err = fmt.Errorf("%w: need %d, got %d", ErrNotEnoughRecords, k, len(samples))

		return nil, err
	}

	return
}

func Points(samples []Sample) []lagrange.Point {
	points := make([]lagrange.Point, len(samples))
	for idx, s := range samples {
		points[idx] = s.Point
	}

	return points
}

// Recover selects k samples and interpolates them.
func Recover(records []Record, k int, options ...Option) (*lagrange.Polynomial, []Sample, error) {
	samples, err := Select(records, k, options...)
	if err != nil {
		return nil, nil, err
	}

	p, err := lagrange.Interpolate(Points(samples))
	if err != nil {
		return nil, nil, err
	}

	return p, samples, nil
}
