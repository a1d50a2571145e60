package assets

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Point is a position in an icon's user space.
type Point struct {
	X, Y float64
}

// Op is the kind of a path Segment.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// Segment is one absolute path command. MoveTo and LineTo use P[0], QuadTo
// uses P[0] as the control point and P[1] as the end, CubicTo uses all
// three. Close uses none.
type Segment struct {
	Op Op
	P  [3]Point
}

// Paint is the presentation of a shape after inheritance from its parents.
type Paint struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
}

// Shape is one drawable element flattened to path segments.
type Shape struct {
	Element  string
	Paint    Paint
	Segments []Segment
}

// Drawing is an SVG document reduced to geometry.
type Drawing struct {
	ViewBox [4]float64 // min-x, min-y, width, height
	Shapes  []Shape
}

// Segments returns the total number of segments over all shapes.
func (d Drawing) Segments() int {
	n := 0
	for _, s := range d.Shapes {
		n += len(s.Segments)
	}
	return n
}

// defaultPaint is what SVG uses when nothing is set.
var defaultPaint = Paint{Fill: "black", Stroke: "none", StrokeWidth: 1}

// ParseDrawing parses data into shapes. It understands path, circle,
// ellipse, rect, line, polyline and polygon, with fill and stroke inherited
// through groups. Other elements are skipped; transforms are not applied.
func ParseDrawing(data []byte) (Drawing, error) {
	var d Drawing
	dec := xml.NewDecoder(bytes.NewReader(data))
	var stack []Paint
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Drawing{}, fmt.Errorf("parse svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			attrs := attrMap(t.Attr)
			if len(stack) == 0 {
				if t.Name.Local != "svg" {
					return Drawing{}, ErrNotSVG
				}
				vb, err := viewBox(attrs)
				if err != nil {
					return Drawing{}, err
				}
				d.ViewBox = vb
				stack = append(stack, inherit(defaultPaint, attrs))
				continue
			}
			paint := inherit(stack[len(stack)-1], attrs)
			stack = append(stack, paint)
			segs, ok, err := shapeSegments(t.Name.Local, attrs)
			if err != nil {
				return Drawing{}, fmt.Errorf("%s: %w", t.Name.Local, err)
			}
			if ok {
				d.Shapes = append(d.Shapes, Shape{Element: t.Name.Local, Paint: paint, Segments: segs})
			}
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}
	if d.ViewBox[2] == 0 && d.ViewBox[3] == 0 {
		return Drawing{}, ErrNotSVG
	}
	return d, nil
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		if a.Name.Space == "" {
			m[a.Name.Local] = a.Value
		}
	}
	return m
}

func inherit(p Paint, attrs map[string]string) Paint {
	if v, ok := attrs["fill"]; ok {
		p.Fill = v
	}
	if v, ok := attrs["stroke"]; ok {
		p.Stroke = v
	}
	if v, ok := attrs["stroke-width"]; ok {
		if w, err := length(v); err == nil {
			p.StrokeWidth = w
		}
	}
	return p
}

// viewBox reads the root viewBox, falling back to width and height and then
// to the 24 unit Lucide grid.
func viewBox(attrs map[string]string) ([4]float64, error) {
	var vb [4]float64
	if v := attrs["viewBox"]; v != "" {
		nums, err := numbers(v)
		if err != nil || len(nums) != 4 {
			return vb, fmt.Errorf("parse svg: bad viewBox %q", v)
		}
		copy(vb[:], nums)
		return vb, nil
	}
	w, werr := length(attrs["width"])
	h, herr := length(attrs["height"])
	if werr != nil || herr != nil {
		return [4]float64{0, 0, 24, 24}, nil
	}
	return [4]float64{0, 0, w, h}, nil
}

// shapeSegments converts one element to segments. ok is false for elements
// that draw nothing by themselves.
func shapeSegments(name string, a map[string]string) ([]Segment, bool, error) {
	num := func(key string) float64 {
		v, _ := length(a[key])
		return v
	}
	switch name {
	case "path":
		segs, err := ParsePath(a["d"])
		return segs, true, err
	case "circle":
		return ellipse(num("cx"), num("cy"), num("r"), num("r")), true, nil
	case "ellipse":
		return ellipse(num("cx"), num("cy"), num("rx"), num("ry")), true, nil
	case "line":
		return []Segment{
			{Op: MoveTo, P: [3]Point{{num("x1"), num("y1")}}},
			{Op: LineTo, P: [3]Point{{num("x2"), num("y2")}}},
		}, true, nil
	case "rect":
		rx, hasRx := a["rx"]
		ry, hasRy := a["ry"]
		switch {
		case hasRx && !hasRy:
			ry = rx
		case hasRy && !hasRx:
			rx = ry
		}
		rxv, _ := length(rx)
		ryv, _ := length(ry)
		return rect(num("x"), num("y"), num("width"), num("height"), rxv, ryv), true, nil
	case "polyline", "polygon":
		nums, err := numbers(a["points"])
		if err != nil {
			return nil, true, err
		}
		var segs []Segment
		for i := 0; i+1 < len(nums); i += 2 {
			op := LineTo
			if i == 0 {
				op = MoveTo
			}
			segs = append(segs, Segment{Op: op, P: [3]Point{{nums[i], nums[i+1]}}})
		}
		if name == "polygon" && len(segs) > 0 {
			segs = append(segs, Segment{Op: Close})
		}
		return segs, true, nil
	}
	return nil, false, nil
}

func ellipse(cx, cy, rx, ry float64) []Segment {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	right, left := Point{cx + rx, cy}, Point{cx - rx, cy}
	segs := []Segment{{Op: MoveTo, P: [3]Point{right}}}
	segs = appendArc(segs, right, left, rx, ry, 0, false, true)
	segs = appendArc(segs, left, right, rx, ry, 0, false, true)
	return append(segs, Segment{Op: Close})
}

func rect(x, y, w, h, rx, ry float64) []Segment {
	if w <= 0 || h <= 0 {
		return nil
	}
	rx = min(math.Abs(rx), w/2)
	ry = min(math.Abs(ry), h/2)
	pt := func(px, py float64) [3]Point { return [3]Point{{px, py}} }
	if rx == 0 || ry == 0 {
		return []Segment{
			{Op: MoveTo, P: pt(x, y)},
			{Op: LineTo, P: pt(x+w, y)},
			{Op: LineTo, P: pt(x+w, y+h)},
			{Op: LineTo, P: pt(x, y+h)},
			{Op: Close},
		}
	}
	segs := []Segment{{Op: MoveTo, P: pt(x+rx, y)}}
	corner := func(from, to Point) {
		segs = append(segs, Segment{Op: LineTo, P: [3]Point{from}})
		segs = appendArc(segs, from, to, rx, ry, 0, false, true)
	}
	corner(Point{x + w - rx, y}, Point{x + w, y + ry})
	corner(Point{x + w, y + h - ry}, Point{x + w - rx, y + h})
	corner(Point{x + rx, y + h}, Point{x, y + h - ry})
	corner(Point{x, y + ry}, Point{x + rx, y})
	return append(segs, Segment{Op: Close})
}

// length parses a number with an optional px unit.
func length(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
}

// numbers parses a whitespace or comma separated list of numbers.
func numbers(s string) ([]float64, error) {
	sc := &pathScanner{s: s}
	var out []float64
	for !sc.done() {
		v, err := sc.number()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
