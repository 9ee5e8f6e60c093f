// Package life106 reads and writes the Life 1.06 text format: a mandatory
// "#Life 1.06" header line followed by one "<x> <y>" pair of signed integers
// per live cell. It is a thin adapter around the engine's seed and
// enumeration operations and carries no simulation logic.
package life106

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sparse-life/sparse-life/model"
)

// Header is the literal token every Life 1.06 stream must begin with.
const Header = "#Life 1.06"

// Decode reads a Life 1.06 stream and returns the seed cells in input order.
// A missing or mismatched header, or any line whose trailing two fields do
// not parse as signed integers, is a fatal format error: no partial result
// is returned.
func Decode(r io.Reader) ([]model.Life, error) {
	var cells []model.Life

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if lineno == 0 {
			if line != Header {
				return nil, errors.Errorf("[Decode] not a valid Life 1.06 file, does not begin with %q header", Header)
			}
			lineno++
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, errors.Errorf("[Decode] line %d: expected \"<x> <y>\", got %q", lineno+1, line)
		}
		xStr, yStr := fields[len(fields)-2], fields[len(fields)-1]

		x, err := strconv.ParseInt(xStr, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "[Decode] line %d: invalid x coordinate %q", lineno+1, xStr)
		}
		y, err := strconv.ParseInt(yStr, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "[Decode] line %d: invalid y coordinate %q", lineno+1, yStr)
		}

		cells = append(cells, model.Life{X: x, Y: y})
		lineno++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Decode] failed to read input")
	}
	if lineno == 0 {
		return nil, errors.Errorf("[Decode] empty input, expected %q header", Header)
	}

	return cells, nil
}

// Encode writes the header and one coordinate line per cell, in the order
// given. Callers pass the engine's enumeration, which is already ordered by
// ascending x then ascending y.
func Encode(w io.Writer, lives []*model.Life) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return errors.Wrap(err, "[Encode] failed to write header")
	}
	for _, life := range lives {
		if _, err := fmt.Fprintf(bw, "%d %d\n", life.X, life.Y); err != nil {
			return errors.Wrap(err, "[Encode] failed to write cell")
		}
	}
	return errors.Wrap(bw.Flush(), "[Encode] failed to flush output")
}
