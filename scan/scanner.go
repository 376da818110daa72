package scan

import (
	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/parquet/file"
	"github.com/bits-and-blooms/bitset"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/openlake-io/lakestore/common/log"
)

// Scanner applies one read's options across row-group selection and row
// filtering. Every log line carries the scan id so pruning decisions can be
// traced per scan.
type Scanner struct {
	id   uuid.UUID
	opts *Options
}

func NewScanner(opts *Options) *Scanner {
	if opts == nil {
		opts = NewOptions()
	}
	return &Scanner{id: uuid.New(), opts: opts}
}

func (s *Scanner) ID() uuid.UUID {
	return s.id
}

func (s *Scanner) Options() *Options {
	return s.opts
}

// SelectRowGroups prunes the reader's row groups with the scan predicate.
// Without a predicate every group is selected.
func (s *Scanner) SelectRowGroups(r *file.Reader) ([]int, error) {
	if s.opts.Predicate == nil {
		all := make([]int, r.NumRowGroups())
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	keep, err := SelectRowGroups(r, s.opts.Predicate)
	if err != nil {
		return nil, err
	}
	log.Debug("selected row groups",
		zap.String("scan", s.id.String()),
		zap.Int("total", r.NumRowGroups()),
		zap.Int("selected", len(keep)))
	return keep, nil
}

// Filter evaluates the scan predicate against one record batch. Without a
// predicate every row is selected.
func (s *Scanner) Filter(rec arrow.Record) (*bitset.BitSet, error) {
	rows := uint(rec.NumRows())
	if s.opts.Predicate == nil {
		all := bitset.New(rows)
		all.FlipRange(0, rows)
		return all, nil
	}
	selection, err := Filter(rec, s.opts.Predicate)
	if err != nil {
		return nil, err
	}
	log.Debug("filtered record batch",
		zap.String("scan", s.id.String()),
		zap.Uint("rows", rows),
		zap.Uint("selected", selection.Count()))
	return selection, nil
}
