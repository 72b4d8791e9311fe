// Package tracefile reads the whitespace-separated integer streams that
// make up a LIRS simulation run: the reference trace (.trc) and the
// cache-size parameter list (.par).
package tracefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformed is returned when a token in a trace or parameter stream
// is not a non-negative decimal integer.
type ErrMalformed struct {
	Token string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("tracefile: malformed token %q", e.Token)
}

// ReadInts reads every whitespace-separated integer from r, in order.
func ReadInts(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	// Trace files can be large; grow the token buffer past the
	// default 64KiB line/word limit just in case of unusual input.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var values []int
	for scanner.Scan() {
		token := scanner.Text()
		n, err := strconv.Atoi(token)
		if err != nil || n < 0 {
			return nil, &ErrMalformed{Token: token}
		}
		values = append(values, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Trace is a fully-read reference trace plus the block-universe size it
// implies (the largest id it contains, plus one).
type Trace struct {
	Refs []int
	N    int
}

// ReadTrace reads a .trc stream and establishes N by a pre-pass over the
// values, per the "renumbered to 0..N-1" convention documented for the
// trace file format.
func ReadTrace(r io.Reader) (*Trace, error) {
	refs, err := ReadInts(r)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, ref := range refs {
		if ref+1 > n {
			n = ref + 1
		}
	}
	return &Trace{Refs: refs, N: n}, nil
}

// ReadSizes reads a .par stream of cache sizes, one replay per value.
func ReadSizes(r io.Reader) ([]int, error) {
	return ReadInts(r)
}
