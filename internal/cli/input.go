package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cast"

	cheapruler "github.com/apendleton/cheap-ruler"
	"github.com/apendleton/cheap-ruler/orbgeo"
)

// parseNumbers splits a comma separated list into exactly n numbers.
func parseNumbers(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d comma separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, part := range parts {
		f, err := cast.ToFloat64E(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", s, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("parse %q: coordinates must be finite", s)
		}
		out[i] = f
	}
	return out, nil
}

func parsePoint(s string) (cheapruler.Point, error) {
	f, err := parseNumbers(s, 2)
	if err != nil {
		return cheapruler.Point{}, err
	}
	return cheapruler.Point{f[0], f[1]}, nil
}

func parseBBox(s string) (cheapruler.BBox, error) {
	f, err := parseNumbers(s, 4)
	if err != nil {
		return cheapruler.BBox{}, err
	}
	return cheapruler.BBox{f[0], f[1], f[2], f[3]}, nil
}

func parseFloat(s string) (float64, error) {
	f, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return f, nil
}

// readCollection reads GeoJSON from path, or from stdin when path is "-".
// A lone Feature or Geometry is wrapped into a collection.
func readCollection(path string, stdin io.Reader) (*geojson.FeatureCollection, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return fc, nil
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(f)
		return fc, nil
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		fc := geojson.NewFeatureCollection()
		fc.Append(geojson.NewFeature(g.Geometry()))
		return fc, nil
	}
}

// readLine returns the first line string of the GeoJSON at path.
func readLine(path string, stdin io.Reader) (cheapruler.Line, error) {
	fc, err := readCollection(path, stdin)
	if err != nil {
		return nil, err
	}
	line, ok := orbgeo.FirstLine(fc)
	if !ok || len(line) < 2 {
		return nil, fmt.Errorf("%s: no line string with at least two points", path)
	}
	return line, nil
}

func (a *app) round(f float64) float64 {
	v, _ := strconv.ParseFloat(a.format(f), 64)
	return v
}

func (a *app) format(f float64) string {
	return strconv.FormatFloat(f, 'f', a.cfg.Output.Precision, 64)
}

func (a *app) formatPoint(p cheapruler.Point) string {
	return a.format(p[0]) + "," + a.format(p[1])
}

func (a *app) roundPoint(p cheapruler.Point) cheapruler.Point {
	return cheapruler.Point{a.round(p[0]), a.round(p[1])}
}
