// Package dataset loads measurement files into ordered, in-memory datasets.
//
// Two line formats are supported:
//   - scalar: one floating-point distance value per line (e.g. messwerte_10m.txt)
//   - coordinate: one "<x>, <y>" pair per line (e.g. positionsdaten.txt)
//
// Files carry no header. Blank lines are skipped; any other line that does not
// parse aborts the load with a *ParseError.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// CoordinateDelimiter separates x and y on a coordinate line.
const CoordinateDelimiter = ", "

var (
	// ErrMalformedLine marks a token that is not a finite floating-point number.
	ErrMalformedLine = errors.New("malformed line")
	// ErrFieldCount marks a coordinate line that does not split into exactly two tokens.
	ErrFieldCount = errors.New("unexpected field count")
)

// ParseError reports the offending line of an input file.
type ParseError struct {
	Line int    // 1-based
	Text string // raw line, newline stripped
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Samples is the scalar dataset; the index is the sample number.
type Samples []float64

// Point is one 2D position estimate.
type Point struct {
	X float64
	Y float64
}

// Positions is the coordinate dataset in file order.
type Positions []Point

// Xs returns the x column as a new slice.
func (p Positions) Xs() []float64 {
	out := make([]float64, len(p))
	for i, pt := range p {
		out[i] = pt.X
	}
	return out
}

// Ys returns the y column as a new slice.
func (p Positions) Ys() []float64 {
	out := make([]float64, len(p))
	for i, pt := range p {
		out[i] = pt.Y
	}
	return out
}

// LoadSamples reads a scalar measurement file.
func LoadSamples(path string) (Samples, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open samples")
	}
	defer f.Close()
	s, err := ParseSamples(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return s, nil
}

// ParseSamples parses one float per line.
func ParseSamples(r io.Reader) (Samples, error) {
	var out Samples
	err := eachLine(r, func(n int, line string) error {
		v, err := parseFloat(line)
		if err != nil {
			return &ParseError{Line: n, Text: line, Err: err}
		}
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadPositions reads a coordinate file.
func LoadPositions(path string) (Positions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open positions")
	}
	defer f.Close()
	p, err := ParsePositions(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	return p, nil
}

// ParsePositions parses "<x>, <y>" per line. The delimiter must match exactly.
func ParsePositions(r io.Reader) (Positions, error) {
	var out Positions
	err := eachLine(r, func(n int, line string) error {
		parts := strings.Split(line, CoordinateDelimiter)
		if len(parts) != 2 {
			return &ParseError{Line: n, Text: line, Err: errors.Wrapf(ErrFieldCount, "got %d want 2", len(parts))}
		}
		x, err := parseFloat(parts[0])
		if err != nil {
			return &ParseError{Line: n, Text: line, Err: errors.Wrap(err, "x")}
		}
		y, err := parseFloat(parts[1])
		if err != nil {
			return &ParseError{Line: n, Text: line, Err: errors.Wrap(err, "y")}
		}
		out = append(out, Point{X: x, Y: y})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// eachLine calls fn for every non-blank line with its 1-based line number.
func eachLine(r io.Reader, fn func(n int, line string) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseFloat(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedLine, "%q is not a number", tok)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Wrapf(ErrMalformedLine, "%q is not finite", tok)
	}
	return v, nil
}
