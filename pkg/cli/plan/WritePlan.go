// =================================================================
//
// Copyright (C) 2019 Spatial Current, Inc. - All Rights Reserved
// Released as open source under the MIT License.  See LICENSE file.
//
// =================================================================

package plan

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/spatialcurrent/render-latlon/pkg/cli/output"
	rerrors "github.com/spatialcurrent/render-latlon/pkg/errors"
	"github.com/spatialcurrent/render-latlon/pkg/geo"
	"github.com/spatialcurrent/render-latlon/pkg/renderlist"
)

type zoomSummary struct {
	Zoom    int           `json:"zoom" yaml:"zoom"`
	Range   geo.TileRange `json:"range" yaml:"range"`
	Tiles   int           `json:"tiles" yaml:"tiles"`
	Extent  []float64     `json:"extent" yaml:"extent,flow"`
	Command string        `json:"command" yaml:"command"`
}

type planSummary struct {
	BoundingBox geo.BoundingBox `json:"bbox" yaml:"bbox"`
	Extent      []float64       `json:"extent" yaml:"extent,flow"`
	Tiles       int             `json:"tiles" yaml:"tiles"`
	Zooms       []zoomSummary   `json:"zooms" yaml:"zooms"`
}

// extent returns the bound as [west, south, east, north].
func extent(b orb.Bound) []float64 {
	return []float64{b.Min.Lon(), b.Min.Lat(), b.Max.Lon(), b.Max.Lat()}
}

func summarize(p *renderlist.Plan) planSummary {
	s := planSummary{
		BoundingBox: p.BoundingBox,
		Extent:      extent(p.BoundingBox.Bound()),
		Tiles:       p.Count(),
		Zooms:       make([]zoomSummary, 0, len(p.Commands)),
	}
	for _, c := range p.Commands {
		s.Zooms = append(s.Zooms, zoomSummary{
			Zoom:    c.Zoom,
			Range:   c.Range,
			Tiles:   c.Range.Count(),
			Extent:  extent(c.Range.Bound()),
			Command: c.String(),
		})
	}
	return s
}

// WritePlan writes the plan to w in the given format.
// The text format writes one render_list command per line.
func WritePlan(w io.Writer, p *renderlist.Plan, format string) error {
	switch format {
	case output.FormatText:
		for _, c := range p.Commands {
			if _, err := fmt.Fprintln(w, c.String()); err != nil {
				return err
			}
		}
		return nil
	case output.FormatJSON:
		b, err := json.MarshalIndent(summarize(p), "", "  ")
		if err != nil {
			return errors.Wrap(err, "error serializing plan as json")
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case output.FormatYAML:
		b, err := yaml.Marshal(summarize(p))
		if err != nil {
			return errors.Wrap(err, "error serializing plan as yaml")
		}
		_, err = w.Write(b)
		return err
	}
	return &rerrors.ErrInvalidParameter{Name: output.FlagOutputFormat, Value: format}
}
