// Package report renders the outcome of a run as text, JSON or HCL. The JSON
// and HCL forms are produced from one cty object value so both carry the same
// attribute names.
package report

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/vk/cubetally/internal/ctxlog"
	"github.com/vk/cubetally/internal/game"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatHCL  = "hcl"
)

// Formats lists the supported output formats.
var Formats = []string{FormatText, FormatJSON, FormatHCL}

var recordType = cty.Object(map[string]cty.Type{
	"id":    cty.Number,
	"red":   cty.Number,
	"green": cty.Number,
	"blue":  cty.Number,
	"valid": cty.Bool,
	"power": cty.Number,
})

// Report is everything printed at the end of a run.
type Report struct {
	Inputs     []string
	Games      int
	ValidGames int
	Result     game.Result
	// Records is nil unless per-record output was requested.
	Records []game.Record
}

// New builds a Report from a finished tally.
func New(inputs []string, t *game.Tally, records []game.Record) Report {
	return Report{
		Inputs:     inputs,
		Games:      t.Games(),
		ValidGames: t.ValidGames(),
		Result:     t.Result(),
		Records:    records,
	}
}

// Value returns the report as a cty object.
func (r Report) Value() cty.Value {
	attrs := map[string]cty.Value{
		"games":         cty.NumberIntVal(int64(r.Games)),
		"validGames":    cty.NumberIntVal(int64(r.ValidGames)),
		"sumOfValidIds": cty.NumberUIntVal(r.Result.SumOfValidIDs),
		"totalPower":    cty.NumberUIntVal(r.Result.TotalPower),
	}
	if r.Records != nil {
		if len(r.Records) == 0 {
			attrs["records"] = cty.ListValEmpty(recordType)
		} else {
			vals := make([]cty.Value, 0, len(r.Records))
			for _, rec := range r.Records {
				vals = append(vals, recordValue(rec))
			}
			attrs["records"] = cty.ListVal(vals)
		}
	}
	return cty.ObjectVal(attrs)
}

func recordValue(rec game.Record) cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"id":    cty.NumberUIntVal(uint64(rec.ID)),
		"red":   cty.NumberUIntVal(uint64(rec.MaxRed)),
		"green": cty.NumberUIntVal(uint64(rec.MaxGreen)),
		"blue":  cty.NumberUIntVal(uint64(rec.MaxBlue)),
		"valid": cty.BoolVal(rec.Valid()),
		"power": cty.NumberUIntVal(rec.Power()),
	})
}

// Render writes r to w in the given format.
func Render(ctx context.Context, w io.Writer, format string, r Report) error {
	ctxlog.FromContext(ctx).Debug("Rendering report.", "format", format, "games", r.Games)

	switch format {
	case FormatText:
		return renderText(w, r)
	case FormatJSON:
		return renderJSON(w, r)
	case FormatHCL:
		return renderHCL(w, r)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func renderText(w io.Writer, r Report) error {
	for _, rec := range r.Records {
		status := "impossible"
		if rec.Valid() {
			status = "possible"
		}
		if _, err := fmt.Fprintf(w, "%s (%s, power %d)\n", rec, status, rec.Power()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "games: %d\nvalidGames: %d\nsumOfValidIds: %d\ntotalPower: %d\n",
		r.Games, r.ValidGames, r.Result.SumOfValidIDs, r.Result.TotalPower)
	return err
}

func renderJSON(w io.Writer, r Report) error {
	val := r.Value()
	buf, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	buf = append(buf, '\n')
	_, err = w.Write(buf)
	return err
}

func renderHCL(w io.Writer, r Report) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.SetAttributeValue("games", cty.NumberIntVal(int64(r.Games)))
	body.SetAttributeValue("validGames", cty.NumberIntVal(int64(r.ValidGames)))
	body.SetAttributeValue("sumOfValidIds", cty.NumberUIntVal(r.Result.SumOfValidIDs))
	body.SetAttributeValue("totalPower", cty.NumberUIntVal(r.Result.TotalPower))

	for _, rec := range r.Records {
		body.AppendNewline()
		block := body.AppendNewBlock("game", []string{strconv.FormatUint(uint64(rec.ID), 10)}).Body()
		val := recordValue(rec)
		for _, name := range []string{"red", "green", "blue", "valid", "power"} {
			block.SetAttributeValue(name, val.GetAttr(name))
		}
	}

	_, err := w.Write(f.Bytes())
	return err
}
