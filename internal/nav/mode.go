package nav

// DefaultCompactWidth is the column count below which the dashboard switches
// to the compact layout.
const DefaultCompactWidth = 100

// Detector classifies terminal widths into presentation modes and notifies
// subscribers only when the classification changes.
type Detector struct {
	threshold int
	mode      Mode
	width     int
	known     bool
	subs      []func(Mode)
}

// NewDetector returns a detector that assumes Compact until the first
// observation.
func NewDetector(threshold int) *Detector {
	if threshold <= 0 {
		threshold = DefaultCompactWidth
	}
	return &Detector{threshold: threshold, mode: Compact}
}

// OnModeChange registers fn to be called on every mode transition.
func (d *Detector) OnModeChange(fn func(Mode)) {
	if fn != nil {
		d.subs = append(d.subs, fn)
	}
}

// Mode returns the current classification.
func (d *Detector) Mode() Mode { return d.mode }

// Threshold returns the compact/wide boundary in columns.
func (d *Detector) Threshold() int { return d.threshold }

// Observe records a width. The first observation always notifies; later
// ones notify only when the width crosses the threshold.
func (d *Detector) Observe(width int) (Mode, bool) {
	if width <= 0 {
		return d.mode, false
	}
	d.width = width
	next := d.classify(width)
	if d.known && next == d.mode {
		return d.mode, false
	}
	d.known = true
	d.mode = next
	for _, fn := range d.subs {
		fn(next)
	}
	return next, true
}

// SetThreshold changes the boundary and re-evaluates the last known width.
func (d *Detector) SetThreshold(threshold int) (Mode, bool) {
	if threshold <= 0 || threshold == d.threshold {
		return d.mode, false
	}
	d.threshold = threshold
	if !d.known {
		return d.mode, false
	}
	return d.Observe(d.width)
}

func (d *Detector) classify(width int) Mode {
	if width < d.threshold {
		return Compact
	}
	return Wide
}
