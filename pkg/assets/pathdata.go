package assets

import (
	"fmt"
	"math"
	"strconv"
)

// ParsePath parses SVG path data into absolute segments. Relative commands
// are resolved, H and V become lines, S and T get their reflected control
// points and elliptical arcs are approximated with cubic curves.
func ParsePath(d string) ([]Segment, error) {
	sc := &pathScanner{s: d}
	var (
		segs       []Segment
		cur, start Point
		ctrl       Point // last control point, for S and T
		prev       byte  // previous command, upper case
		cmd        byte
	)
	for !sc.done() {
		if c := sc.s[sc.i]; isCommand(c) {
			cmd = c
			sc.i++
		} else if cmd == 0 {
			return nil, sc.errorf("expected a command")
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, sc.errorf("unexpected number after closepath")
		}

		upper := cmd &^ 0x20
		rel := cmd != upper
		if len(segs) == 0 && upper != 'M' {
			return nil, sc.errorf("path must start with moveto")
		}
		abs := func(x, y float64) Point {
			if rel {
				return Point{cur.X + x, cur.Y + y}
			}
			return Point{x, y}
		}

		switch upper {
		case 'M':
			x, y, err := sc.pair()
			if err != nil {
				return nil, err
			}
			p := abs(x, y)
			segs = append(segs, Segment{Op: MoveTo, P: [3]Point{p}})
			cur, start = p, p
			// Further coordinate pairs are implicit linetos.
			cmd = 'L' | (cmd & 0x20)
		case 'L':
			x, y, err := sc.pair()
			if err != nil {
				return nil, err
			}
			cur = abs(x, y)
			segs = append(segs, Segment{Op: LineTo, P: [3]Point{cur}})
		case 'H':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += cur.X
			}
			cur = Point{x, cur.Y}
			segs = append(segs, Segment{Op: LineTo, P: [3]Point{cur}})
		case 'V':
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += cur.Y
			}
			cur = Point{cur.X, y}
			segs = append(segs, Segment{Op: LineTo, P: [3]Point{cur}})
		case 'C', 'S':
			c1 := cur
			if upper == 'C' {
				x, y, err := sc.pair()
				if err != nil {
					return nil, err
				}
				c1 = abs(x, y)
			} else if prev == 'C' || prev == 'S' {
				c1 = reflect(ctrl, cur)
			}
			nums, err := sc.numbers(4)
			if err != nil {
				return nil, err
			}
			c2, p := abs(nums[0], nums[1]), abs(nums[2], nums[3])
			segs = append(segs, Segment{Op: CubicTo, P: [3]Point{c1, c2, p}})
			ctrl, cur = c2, p
		case 'Q', 'T':
			c := cur
			if upper == 'Q' {
				x, y, err := sc.pair()
				if err != nil {
					return nil, err
				}
				c = abs(x, y)
			} else if prev == 'Q' || prev == 'T' {
				c = reflect(ctrl, cur)
			}
			x, y, err := sc.pair()
			if err != nil {
				return nil, err
			}
			p := abs(x, y)
			segs = append(segs, Segment{Op: QuadTo, P: [3]Point{c, p}})
			ctrl, cur = c, p
		case 'A':
			radii, err := sc.numbers(3)
			if err != nil {
				return nil, err
			}
			large, err := sc.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := sc.flag()
			if err != nil {
				return nil, err
			}
			x, y, err := sc.pair()
			if err != nil {
				return nil, err
			}
			p := abs(x, y)
			segs = appendArc(segs, cur, p, radii[0], radii[1], radii[2], large, sweep)
			cur = p
		case 'Z':
			segs = append(segs, Segment{Op: Close})
			cur = start
		default:
			return nil, sc.errorf("unknown command %q", cmd)
		}
		prev = upper
	}
	return segs, nil
}

func isCommand(c byte) bool {
	switch c &^ 0x20 {
	case 'M', 'L', 'H', 'V', 'C', 'S', 'Q', 'T', 'A', 'Z':
		return true
	}
	return false
}

func reflect(ctrl, about Point) Point {
	return Point{2*about.X - ctrl.X, 2*about.Y - ctrl.Y}
}

// appendArc appends cubic curves approximating the elliptical arc from p0
// to p1, using the endpoint to center conversion of SVG 1.1 appendix F.6.
// Each curve spans at most a quarter turn.
func appendArc(segs []Segment, p0, p1 Point, rx, ry, phiDeg float64, large, sweep bool) []Segment {
	if p0 == p1 {
		return segs
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return append(segs, Segment{Op: LineTo, P: [3]Point{p1}})
	}

	sinPhi, cosPhi := math.Sincos(phiDeg * math.Pi / 180)
	dx, dy := (p0.X-p1.X)/2, (p0.Y-p1.Y)/2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	if l := x1*x1/(rx*rx) + y1*y1/(ry*ry); l > 1 {
		s := math.Sqrt(l)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if num > 0 && den > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx
	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2

	ux, uy := (x1-cx1)/rx, (y1-cy1)/ry
	vx, vy := (-x1-cx1)/rx, (-y1-cy1)/ry
	theta := vectorAngle(1, 0, ux, uy)
	delta := vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := max(int(math.Ceil(math.Abs(delta)/(math.Pi/2)-1e-9)), 1)
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)
	project := func(x, y float64) Point {
		return Point{
			X: cx + rx*cosPhi*x - ry*sinPhi*y,
			Y: cy + rx*sinPhi*x + ry*cosPhi*y,
		}
	}
	for range n {
		s1, c1 := math.Sincos(theta)
		s2, c2 := math.Sincos(theta + step)
		segs = append(segs, Segment{Op: CubicTo, P: [3]Point{
			project(c1-k*s1, s1+k*c1),
			project(c2+k*s2, s2-k*c2),
			project(c2, s2),
		}})
		theta += step
	}
	segs[len(segs)-1].P[2] = p1
	return segs
}

func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// pathScanner tokenizes path data and number lists.
type pathScanner struct {
	s string
	i int
}

func (sc *pathScanner) errorf(format string, args ...any) error {
	return fmt.Errorf("path data at %d: %s", sc.i, fmt.Sprintf(format, args...))
}

func (sc *pathScanner) skipSeparators() {
	for sc.i < len(sc.s) {
		switch sc.s[sc.i] {
		case ' ', '\t', '\n', '\r', '\f', ',':
			sc.i++
		default:
			return
		}
	}
}

func (sc *pathScanner) done() bool {
	sc.skipSeparators()
	return sc.i >= len(sc.s)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// number reads one number. "1.5.5" is two numbers and "1-2" is 1 and -2.
func (sc *pathScanner) number() (float64, error) {
	sc.skipSeparators()
	s, start := sc.s, sc.i
	i := start
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := false
	for i < len(s) && isDigit(s[i]) {
		i++
		digits = true
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits = true
		}
	}
	if !digits {
		return 0, sc.errorf("expected a number")
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	v, err := strconv.ParseFloat(s[start:i], 64)
	if err != nil {
		return 0, sc.errorf("%v", err)
	}
	sc.i = i
	return v, nil
}

func (sc *pathScanner) numbers(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		v, err := sc.number()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (sc *pathScanner) pair() (float64, float64, error) {
	nums, err := sc.numbers(2)
	if err != nil {
		return 0, 0, err
	}
	return nums[0], nums[1], nil
}

// flag reads an arc flag, which may be written without a separator.
func (sc *pathScanner) flag() (bool, error) {
	sc.skipSeparators()
	if sc.i < len(sc.s) {
		switch sc.s[sc.i] {
		case '0':
			sc.i++
			return false, nil
		case '1':
			sc.i++
			return true, nil
		}
	}
	return false, sc.errorf("expected an arc flag")
}
