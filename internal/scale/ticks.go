package scale

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"

	"chart-grid/pkg/geometry"
)

// Tick is a single labeled reference position on an axis.
type Tick struct {
	Value float64
	Label string
}

// Ticks holds the derived tick set for one axis: labeled major ticks in
// axis order, plus unlabeled minor tick positions.
type Ticks struct {
	Major []Tick
	Minor []float64
}

// Default tick-count window used when the caller passes zeros.
const (
	DefaultMinTicks = 4
	DefaultMaxTicks = 10
)

// stepMultipliers are the "nice" step factors tried at each power of ten,
// largest first so the search walks steps in strictly descending order.
var stepMultipliers = [...]float64{5, 2, 1}

// minorSubdiv maps a step multiplier to the number of minor subdivisions
// between adjacent major ticks.
var minorSubdiv = map[float64]int{1: 5, 2: 2, 5: 5}

// Generate produces the tick set for a mapping, targeting between minCount
// and maxCount major ticks. Ticks frame the data: the first and last major
// may lie slightly outside the mapping's bounds. The result is deterministic
// for identical inputs, and never empty — degenerate bounds yield a single
// tick at the bound value. If inverted is set the returned order is reversed.
func Generate(m Mapping, minCount, maxCount int, inverted bool) Ticks {
	if minCount <= 0 {
		minCount = DefaultMinTicks
	}
	if maxCount <= 0 {
		maxCount = DefaultMaxTicks
	}
	if maxCount < minCount {
		minCount, maxCount = maxCount, minCount
	}

	var t Ticks
	switch m.Kind {
	case Logarithmic:
		t = logTicks(m, minCount, maxCount)
	default:
		t = linearTicks(m.Bounds, minCount, maxCount)
	}

	if inverted {
		reverseTicks(t.Major)
		reverseFloats(t.Minor)
	}
	return t
}

// linearTicks chooses a step from {1,2,5}x10^k such that the number of ticks
// spanning the bounds lands inside [minCount, maxCount], then emits majors at
// exact multiples of the step. When no candidate lands inside the window, the
// candidate whose count is closest to the window midpoint wins.
func linearTicks(b geometry.Bounds[float64], minCount, maxCount int) Ticks {
	if b.IsDegenerate() {
		return Ticks{Major: []Tick{{Value: b.Min, Label: formatTickAuto(b.Min)}}}
	}

	span := b.Max - b.Min
	baseExp := int(math.Ceil(math.Log10(span)))
	target := (minCount + maxCount) / 2

	type candidate struct {
		step  float64
		exp   int
		mult  float64
		count int
	}
	var chosen *candidate
	var closest candidate
	closestDist := math.MaxInt32

	for exp := baseExp; exp >= baseExp-6 && chosen == nil; exp-- {
		for _, mult := range stepMultipliers {
			step := mult * math.Pow10(exp)
			first := math.Floor(b.Min / step)
			last := math.Ceil(b.Max / step)
			count := int(last-first) + 1
			c := candidate{step: step, exp: exp, mult: mult, count: count}

			if count >= minCount && count <= maxCount {
				chosen = &c
				break
			}
			if d := abs(count - target); d < closestDist {
				closestDist = d
				closest = c
			}
		}
	}
	if chosen == nil {
		chosen = &closest
	}

	step := chosen.step
	firstIdx := int(math.Floor(b.Min / step))
	lastIdx := int(math.Ceil(b.Max / step))
	decimals := tickDecimals(chosen.exp)

	major := make([]Tick, 0, lastIdx-firstIdx+1)
	for i := firstIdx; i <= lastIdx; i++ {
		v := float64(i) * step
		major = append(major, Tick{Value: v, Label: formatTick(v, decimals)})
	}

	subdiv := minorSubdiv[chosen.mult]
	minorStep := step / float64(subdiv)
	var minor []float64
	for i := firstIdx; i < lastIdx; i++ {
		base := float64(i) * step
		for j := 1; j < subdiv; j++ {
			minor = append(minor, base+float64(j)*minorStep)
		}
	}

	return Ticks{Major: major, Minor: minor}
}

// logTicks places majors at powers of the mapping base framing the bounds.
// When the dynamic range spans less than one full decade the bounds are
// subdivided linearly instead, since a single power (or none) would tell the
// reader nothing. Minors land at the integer multiples of each decade.
func logTicks(m Mapping, minCount, maxCount int) Ticks {
	b := m.Bounds
	if b.IsDegenerate() {
		return Ticks{Major: []Tick{{Value: b.Min, Label: formatTickAuto(b.Min)}}}
	}

	base := m.base()
	logMin := math.Log(b.Min) / math.Log(base)
	logMax := math.Log(b.Max) / math.Log(base)

	// Less than a full decade of dynamic range: decade powers would frame
	// the data from far outside (or miss it entirely), so subdivide
	// linearly instead.
	if logMax-logMin < 1 {
		return linearTicks(b, minCount, maxCount)
	}

	kmin := snapFloor(logMin)
	kmax := snapCeil(logMax)

	decades := kmax - kmin + 1
	stride := 1
	for (decades-1)/stride+1 > maxCount {
		stride++
	}

	var major []Tick
	for k := kmin; k <= kmax; k += stride {
		v := math.Pow(base, float64(k))
		major = append(major, Tick{Value: v, Label: formatTick(v, tickDecimals(k))})
	}

	var minor []float64
	if stride == 1 {
		for k := kmin; k < kmax; k++ {
			decade := math.Pow(base, float64(k))
			for mult := 2; mult < int(base); mult++ {
				v := float64(mult) * decade
				if v > b.Max {
					break
				}
				if v >= b.Min {
					minor = append(minor, v)
				}
			}
		}
	}

	return Ticks{Major: major, Minor: minor}
}

// snapFloor floors x, treating values within floating-point fuzz of an
// integer as that integer so log10(1000)=2.9999... still counts as decade 3.
func snapFloor(x float64) int {
	r := math.Round(x)
	if scalar.EqualWithinAbs(x, r, 1e-9) {
		return int(r)
	}
	return int(math.Floor(x))
}

// snapCeil is the ceiling counterpart of snapFloor.
func snapCeil(x float64) int {
	r := math.Round(x)
	if scalar.EqualWithinAbs(x, r, 1e-9) {
		return int(r)
	}
	return int(math.Ceil(x))
}

// tickDecimals returns the number of fractional digits needed for ticks at
// the 10^exp magnitude, capped to keep labels readable.
func tickDecimals(exp int) int {
	if exp >= 0 {
		return 0
	}
	if exp < -12 {
		return 12
	}
	return -exp
}

// formatTick renders a tick value with the given fractional precision, then
// strips trailing zeros so labels carry no ".0" noise.
func formatTick(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// formatTickAuto renders a tick value at its shortest exact representation.
func formatTickAuto(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func reverseTicks(s []Tick) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseFloats(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
