// Package csvline reads the fields of one already split delimited line in order, skipping some and handing
// others to a callback. The first failure stops the chain and is reported by Err.
package csvline

import (
	"fmt"
	"strconv"
	"strings"
)

// NoData - Marks a population field without a value
const NoData = "-"

// Reader - Consumes the fields of one line from left to right
type Reader struct {
	fields []string
	pos    int
	err    error
}

// New - Returns a reader positioned at the first of fields
func New(fields []string) *Reader {
	return &Reader{fields: fields}
}

// Skip - Consumes one field without looking at it
func (R *Reader) Skip() *Reader {
	if R.err != nil {
		return R
	}

	if R.pos >= len(R.fields) {
		R.err = fmt.Errorf("field %d is missing, line has %d fields", R.pos+1, len(R.fields))
		return R
	}
	R.pos++

	return R
}

// Handle - Consumes one field and passes it, trimmed of surrounding white space, to handler
func (R *Reader) Handle(handler func(field string) error) *Reader {
	if R.err != nil {
		return R
	}

	if R.pos >= len(R.fields) {
		R.err = fmt.Errorf("field %d is missing, line has %d fields", R.pos+1, len(R.fields))
		return R
	}

	field := strings.TrimSpace(R.fields[R.pos])
	R.pos++

	if err := handler(field); err != nil {
		R.err = fmt.Errorf("field %d %q: %w", R.pos, field, err)
	}

	return R
}

// Optional - Like Handle but a missing field is passed to handler as an empty string instead of failing
func (R *Reader) Optional(handler func(field string) error) *Reader {
	if R.err != nil {
		return R
	}

	if R.pos >= len(R.fields) {
		if err := handler(""); err != nil {
			R.err = fmt.Errorf("field %d: %w", R.pos+1, err)
		}
		return R
	}

	return R.Handle(handler)
}

// Err - Returns the first failure of the chain, or nil
func (R *Reader) Err() error {
	return R.err
}

// String - Returns a handler storing the field in target
func String(target *string) func(string) error {
	return func(field string) error {
		*target = field
		return nil
	}
}

// Count - Returns a handler parsing a non-negative count into target; NoData stores 0
func Count(target *int) func(string) error {
	return func(field string) error {
		if field == NoData || field == "" {
			*target = 0
			return nil
		}

		n, err := strconv.Atoi(strings.ReplaceAll(field, " ", ""))
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("negative count %d", n)
		}

		*target = n
		return nil
	}
}

// Restrict - Returns the identifier with one enclosing character stripped from each end, so that "<SK0>"
// becomes "SK0". Identifiers shorter than two characters come back empty.
func Restrict(id string) string {
	r := []rune(id)
	if len(r) < 2 {
		return ""
	}

	return string(r[1 : len(r)-1])
}

// ParentID - Returns the restricted identifier of the parent, which is the restricted identifier with its
// last character removed
func ParentID(restricted string) string {
	r := []rune(restricted)
	if len(r) == 0 {
		return ""
	}

	return string(r[:len(r)-1])
}
