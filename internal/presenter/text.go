// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/mattn/go-runewidth"
	"github.com/vorlif/spreak"

	"github.com/wneessen/foodfinder/internal/locate"
	"github.com/wneessen/foodfinder/internal/place"
)

// ListLineTpl renders a single ranked place on the console.
const ListLineTpl = `{{.Index}}. {{.Name}} ({{.Category}}) — {{floatFormat .Lat 5}}, {{floatFormat .Lon 5}} ` +
	`[{{floatFormat .Distance 1}} m]`

// ListLine is the template context of a single console line.
type ListLine struct {
	Index    int
	Name     string
	Category place.Category
	Lat      float64
	Lon      float64
	Distance float64
}

// Text prints the ranked places as a numbered list.
type Text struct {
	out       io.Writer
	localizer *spreak.Localizer
	line      *template.Template
	radius    float64
}

// NewText returns a Text sink writing to out. radius is only used for the list header.
func NewText(out io.Writer, loc *spreak.Localizer, radius float64) (*Text, error) {
	tpl, err := template.New("line").Funcs(templateFuncMap()).Parse(ListLineTpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse list line template: %w", err)
	}
	return &Text{
		out:       out,
		localizer: loc,
		line:      tpl,
		radius:    radius,
	}, nil
}

func (t *Text) Present(_ context.Context, records []place.Record, _ locate.Location) error {
	buf := bufio.NewWriter(t.out)

	header := fmt.Sprintf(t.localizer.Get("Showing top %d closest places within %sm:"), len(records),
		radiusFormat(t.radius))
	_, _ = fmt.Fprintln(buf, header)
	_, _ = fmt.Fprintln(buf, strings.Repeat("=", runewidth.StringWidth(header)))

	for i, r := range records {
		line := ListLine{
			Index:    i + 1,
			Name:     r.Name,
			Category: r.Category,
			Lat:      r.Location.Lat,
			Lon:      r.Location.Lon,
			Distance: r.DistanceMeters(),
		}
		if err := t.line.Execute(buf, line); err != nil {
			return fmt.Errorf("failed to render list line: %w", err)
		}
		_ = buf.WriteByte('\n')
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// PrintLocation writes the resolved location line that precedes every result.
func PrintLocation(out io.Writer, loc *spreak.Localizer, origin locate.Location) error {
	line := fmt.Sprintf(loc.Get("Your approximate location: %.5f, %.5f"), origin.Lat, origin.Lon)
	if p := origin.Place(); p != "" {
		line += " (" + p + ")"
	}
	if _, err := fmt.Fprintln(out, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// PrintNoResults writes the informational message for an empty result.
func PrintNoResults(out io.Writer, loc *spreak.Localizer, radius float64) error {
	if _, err := fmt.Fprintf(out, loc.Get("No named food places found within %sm.")+"\n", radiusFormat(radius)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
