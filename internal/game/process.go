package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single record line read by Scan.
const maxLineSize = 1 << 20

// Result holds the two totals computed over a set of records.
type Result struct {
	SumOfValidIDs uint64
	TotalPower    uint64
}

// Tally folds records into a Result. The zero value is an empty tally.
type Tally struct {
	result Result
	games  int
	valid  int
}

// Add folds one record into the tally.
func (t *Tally) Add(rec Record) {
	t.games++
	t.result.TotalPower += rec.Power()
	if rec.Valid() {
		t.valid++
		t.result.SumOfValidIDs += uint64(rec.ID)
	}
}

// Merge folds another tally into t.
func (t *Tally) Merge(other Tally) {
	t.games += other.games
	t.valid += other.valid
	t.result.SumOfValidIDs += other.result.SumOfValidIDs
	t.result.TotalPower += other.result.TotalPower
}

// Result returns the totals folded so far.
func (t *Tally) Result() Result { return t.result }

// Games returns the number of records added.
func (t *Tally) Games() int { return t.games }

// ValidGames returns the number of added records that were valid.
func (t *Tally) ValidGames() int { return t.valid }

// Process parses every non-empty line of raw and returns the totals.
func Process(raw string) Result {
	var t Tally
	for line := range strings.Lines(raw) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		t.Add(ParseLine(line))
	}
	return t.Result()
}

// ProcessReader is Process over a stream.
func ProcessReader(r io.Reader) (Result, error) {
	var t Tally
	if err := Scan(r, t.Add); err != nil {
		return Result{}, err
	}
	return t.Result(), nil
}

// Scan reads r line by line and calls fn with the record parsed from each
// non-empty line. Only read errors are returned.
func Scan(r io.Reader, fn func(Record)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fn(ParseLine(line))
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read game records: %w", err)
	}
	return nil
}
