package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Bag limits a game must stay within to be possible.
const (
	MaxRed   = 12
	MaxGreen = 13
	MaxBlue  = 14
)

const idPrefix = "Game "

// Record is the per-color maximum count seen across all draws of one game.
type Record struct {
	ID       uint32
	MaxRed   uint32
	MaxGreen uint32
	MaxBlue  uint32
}

// ParseLine parses a single "Game <id>: <draws>" line. It never fails: a
// missing or malformed ID yields 0, a malformed count counts as 0 and items
// with an unknown color are skipped.
func ParseLine(line string) Record {
	rec := Record{ID: parseID(line)}

	segments := strings.Split(line, ":")
	if len(segments) < 2 {
		return rec
	}

	for _, set := range strings.Split(strings.TrimSpace(segments[1]), ";") {
		for _, item := range strings.Split(strings.TrimSpace(set), ", ") {
			fields := strings.Fields(item)
			if len(fields) < 2 {
				continue
			}
			color, err := ParseColor(fields[1])
			if err != nil {
				continue
			}
			rec.observe(color, parseCount(fields[0]))
		}
	}
	return rec
}

// parseID reads the run of digits directly after the "Game " prefix.
func parseID(line string) uint32 {
	rest := strings.TrimPrefix(line, idPrefix)
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	id, err := strconv.ParseUint(rest[:end], 10, 32)
	if err != nil {
		return 0
	}
	return uint32(id)
}

func parseCount(token string) uint32 {
	n, err := strconv.ParseUint(token, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(n)
}

func (r *Record) observe(c Color, n uint32) {
	switch c {
	case Red:
		r.MaxRed = max(r.MaxRed, n)
	case Green:
		r.MaxGreen = max(r.MaxGreen, n)
	case Blue:
		r.MaxBlue = max(r.MaxBlue, n)
	}
}

// Valid reports whether every color maximum is within its bag limit.
func (r Record) Valid() bool {
	return r.MaxRed <= MaxRed && r.MaxGreen <= MaxGreen && r.MaxBlue <= MaxBlue
}

// Power is the product of the three color maxima.
func (r Record) Power() uint64 {
	return uint64(r.MaxRed) * uint64(r.MaxGreen) * uint64(r.MaxBlue)
}

// String renders the record as a single-draw game line that ParseLine maps
// back to the same record.
func (r Record) String() string {
	return fmt.Sprintf("Game %d: %d red, %d green, %d blue", r.ID, r.MaxRed, r.MaxGreen, r.MaxBlue)
}
