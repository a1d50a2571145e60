package assets

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrNotSVG is returned when data has no <svg> root element.
var ErrNotSVG = errors.New("not an svg document")

// SVGInfo summarizes an SVG document without rendering it.
type SVGInfo struct {
	Width    string
	Height   string
	ViewBox  string
	Attrs    map[string]string // every root attribute, by local name
	Elements map[string]int    // child element name -> count
}

// Shapes returns "path ×2, circle ×1" style text ordered by element name.
func (s SVGInfo) Shapes() string {
	names := make([]string, 0, len(s.Elements))
	for name := range s.Elements {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s ×%d", name, s.Elements[name]))
	}
	return strings.Join(parts, ", ")
}

// DescribeSVG parses data and reports its root attributes and element counts.
func DescribeSVG(data []byte) (SVGInfo, error) {
	info := SVGInfo{Attrs: make(map[string]string), Elements: make(map[string]int)}
	dec := xml.NewDecoder(bytes.NewReader(data))
	depth := 0
	sawRoot := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return SVGInfo{}, fmt.Errorf("parse svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if t.Name.Local != "svg" {
					return SVGInfo{}, ErrNotSVG
				}
				sawRoot = true
				for _, a := range t.Attr {
					if a.Name.Space == "" {
						info.Attrs[a.Name.Local] = a.Value
					}
					switch a.Name.Local {
					case "width":
						info.Width = a.Value
					case "height":
						info.Height = a.Value
					case "viewBox":
						info.ViewBox = a.Value
					}
				}
			} else {
				info.Elements[t.Name.Local]++
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	if !sawRoot || depth != 0 {
		return SVGInfo{}, ErrNotSVG
	}
	return info, nil
}

// InnerSVG returns the markup between the root <svg> tags, so the shapes can
// be re-parented under a group with different styling.
func InnerSVG(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	depth := 0
	start := -1
	for {
		off := dec.InputOffset()
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, ErrNotSVG
		}
		if err != nil {
			return nil, fmt.Errorf("parse svg: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				if t.Name.Local != "svg" {
					return nil, ErrNotSVG
				}
				start = int(dec.InputOffset())
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 && start >= 0 {
				return bytes.TrimSpace(data[start:off]), nil
			}
		}
	}
}
