package nav

import "testing"

func TestDetector_FirstObservationAlwaysNotifies(t *testing.T) {
	t.Parallel()

	d := NewDetector(100)
	var got []Mode
	d.OnModeChange(func(m Mode) { got = append(got, m) })

	if m, changed := d.Observe(80); !changed || m != Compact {
		t.Fatalf("Observe(80) = %s, %v; want compact, true", m, changed)
	}
	if len(got) != 1 || got[0] != Compact {
		t.Fatalf("notifications = %v, want [compact]", got)
	}
}

func TestDetector_NotifiesOnlyOnCrossing(t *testing.T) {
	t.Parallel()

	d := NewDetector(100)
	var got []Mode
	d.OnModeChange(func(m Mode) { got = append(got, m) })

	for _, w := range []int{120, 140, 99, 60, 100, 100, 0, -3} {
		d.Observe(w)
	}
	want := []Mode{Wide, Compact, Wide}
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("notification %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDetector_ThresholdBoundary(t *testing.T) {
	t.Parallel()

	d := NewDetector(0)
	if d.Threshold() != DefaultCompactWidth {
		t.Fatalf("threshold = %d, want default %d", d.Threshold(), DefaultCompactWidth)
	}
	if m, _ := d.Observe(DefaultCompactWidth - 1); m != Compact {
		t.Errorf("width %d = %s, want compact", DefaultCompactWidth-1, m)
	}
	if m, _ := d.Observe(DefaultCompactWidth); m != Wide {
		t.Errorf("width %d = %s, want wide", DefaultCompactWidth, m)
	}
}

func TestDetector_SetThresholdReclassifies(t *testing.T) {
	t.Parallel()

	d := NewDetector(100)
	if _, changed := d.SetThreshold(80); changed {
		t.Fatal("threshold change before any observation must not notify")
	}
	d.Observe(90) // wide at 80
	if d.Mode() != Wide {
		t.Fatalf("mode = %s, want wide", d.Mode())
	}
	m, changed := d.SetThreshold(120)
	if !changed || m != Compact {
		t.Fatalf("SetThreshold(120) = %s, %v; want compact, true", m, changed)
	}
	if _, changed := d.SetThreshold(120); changed {
		t.Fatal("same threshold must not notify")
	}
}
