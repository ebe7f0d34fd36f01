package inkpad

import "math"

// PointerType identifies the device that produced a Sample.
type PointerType int

const (
	// PointerUnknown means the device kind was not reported.
	PointerUnknown PointerType = iota
	// PointerMouse is a mouse or trackpad pointer.
	PointerMouse
	// PointerPen is a stylus; pen samples usually carry real pressure.
	PointerPen
	// PointerTouch is a finger on a touch screen.
	PointerTouch
)

// String returns the pointer type name.
func (pt PointerType) String() string {
	switch pt {
	case PointerMouse:
		return "mouse"
	case PointerPen:
		return "pen"
	case PointerTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// PressureUnknown marks a Sample whose device did not report pressure.
// Any negative pressure value is treated as unknown.
const PressureUnknown = -1.0

// Sample is one timestamped pointer event in logical surface coordinates.
// Samples are immutable once recorded into a stroke.
type Sample struct {
	X, Y float64
	// Pressure is in [0, 1]; negative means unknown (see PressureUnknown).
	Pressure float64
	// Time is a monotonic timestamp in milliseconds.
	Time float64
	// PointerType is the producing device kind.
	PointerType PointerType
}

// Point returns the sample position as a Point.
func (s Sample) Point() Point {
	return Point{X: s.X, Y: s.Y}
}

// pressureOr returns the sample pressure, or def when unknown.
func (s Sample) pressureOr(def float64) float64 {
	if s.Pressure < 0 {
		return def
	}
	return s.Pressure
}

// Distance returns the Euclidean distance between two samples.
func Distance(a, b Sample) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Velocity returns the speed from a to b in pixels per millisecond.
// Elapsed time is floored at 1 ms so coincident timestamps never divide
// by zero.
func Velocity(a, b Sample) float64 {
	return Distance(a, b) / math.Max(1, b.Time-a.Time)
}

// Lerp performs scalar linear interpolation: t=0 returns s, t=1 returns e.
func Lerp(s, e, t float64) float64 {
	return s*(1-t) + e*t
}

// Midpoint returns a synthetic sample halfway between a and b. Position and
// time are arithmetic means; pressure is the mean of each sample's pressure
// defaulted to 0.5 when unknown; the pointer type is inherited from a.
func Midpoint(a, b Sample) Sample {
	return Sample{
		X:           Lerp(a.X, b.X, 0.5),
		Y:           Lerp(a.Y, b.Y, 0.5),
		Pressure:    Lerp(a.pressureOr(0.5), b.pressureOr(0.5), 0.5),
		Time:        Lerp(a.Time, b.Time, 0.5),
		PointerType: a.PointerType,
	}
}
