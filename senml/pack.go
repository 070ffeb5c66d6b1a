package senml

import (
	"fmt"

	"github.com/telwire/senmlcbor/errs"
)

const (
	// MaxPackRecords is the hard upper bound on records in one pack.
	MaxPackRecords = 99

	// MaxRecordExtensions is the hard upper bound on extension attributes
	// in one record.
	MaxRecordExtensions = 5
)

// Pack is an ordered sequence of records, the unit of encoding and decoding.
// Record order is significant and preserved exactly; base-field inheritance
// (Resolve) folds over it left to right.
//
// An empty pack is valid and encodes to a zero-length array.
type Pack struct {
	Records []Record
}

// Append adds records to the pack in order, enforcing the MaxPackRecords
// bound.
//
// Returns:
//   - error: errs.ErrCapacityExceeded when the result would exceed
//     MaxPackRecords; the pack is left unchanged. Nil otherwise.
func (p *Pack) Append(records ...Record) error {
	if len(p.Records)+len(records) > MaxPackRecords {
		return fmt.Errorf("%w: pack would hold %d records, limit is %d",
			errs.ErrCapacityExceeded, len(p.Records)+len(records), MaxPackRecords)
	}

	p.Records = append(p.Records, records...)

	return nil
}

// Len returns the number of records in the pack.
func (p Pack) Len() int { return len(p.Records) }

// Validate checks the pack and every record in it against the wire-format
// bounds. The codec calls it before emitting any bytes; callers building
// packs by hand can use it for an early check.
func (p Pack) Validate() error {
	if len(p.Records) > MaxPackRecords {
		return fmt.Errorf("%w: pack holds %d records, limit is %d",
			errs.ErrCapacityExceeded, len(p.Records), MaxPackRecords)
	}
	for i, r := range p.Records {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return nil
}

// Equal reports whether two packs hold structurally identical records in
// the same order.
func (p Pack) Equal(other Pack) bool {
	if len(p.Records) != len(other.Records) {
		return false
	}
	for i := range p.Records {
		if !p.Records[i].Equal(other.Records[i]) {
			return false
		}
	}

	return true
}
