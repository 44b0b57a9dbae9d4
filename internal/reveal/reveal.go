// Package reveal models the fade/slide-in applied to project cards the first
// time they scroll into view.
package reveal

import (
	"fmt"
	"strconv"
	"time"

	g "maragu.dev/gomponents"
)

// Frame is the visual state of an element at one instant.
type Frame struct {
	Opacity float64
	OffsetY float64 // px, positive is downward
}

// Spec describes one entrance animation.
type Spec struct {
	Initial  Frame
	Target   Frame
	Duration time.Duration
	Once     bool
}

// DefaultSpec fades in from 20px below over half a second, once.
func DefaultSpec() Spec {
	return Spec{
		Initial:  Frame{Opacity: 0, OffsetY: 20},
		Target:   Frame{Opacity: 1, OffsetY: 0},
		Duration: 500 * time.Millisecond,
		Once:     true,
	}
}

type State int

const (
	Hidden State = iota
	Animating
	Settled
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Animating:
		return "animating"
	case Settled:
		return "settled"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Tracker follows a single element through its entrance animation.
// Intersection notifications are fed in with Enter and Leave, time with Advance.
type Tracker struct {
	spec     Spec
	state    State
	elapsed  time.Duration
	triggers int
}

func NewTracker(spec Spec) *Tracker {
	return &Tracker{spec: spec}
}

func (t *Tracker) State() State  { return t.state }
func (t *Tracker) Triggers() int { return t.triggers }

// Enter reports that the element became visible. It returns true only when
// this call started the animation.
func (t *Tracker) Enter() bool {
	switch t.state {
	case Hidden:
	case Settled:
		if t.spec.Once {
			return false
		}
	default:
		return false
	}
	t.state = Animating
	t.elapsed = 0
	t.triggers++
	if t.spec.Duration <= 0 {
		t.state = Settled
	}
	return true
}

// Leave reports that the element left the viewport. A once-only animation
// keeps its state; a repeating one rewinds to Hidden.
func (t *Tracker) Leave() {
	if t.spec.Once {
		return
	}
	t.state = Hidden
	t.elapsed = 0
}

// Advance moves the animation clock forward.
func (t *Tracker) Advance(d time.Duration) {
	if t.state != Animating || d <= 0 {
		return
	}
	t.elapsed += d
	if t.elapsed >= t.spec.Duration {
		t.elapsed = t.spec.Duration
		t.state = Settled
	}
}

// Frame returns the current visual state, interpolated linearly while animating.
func (t *Tracker) Frame() Frame {
	switch t.state {
	case Hidden:
		return t.spec.Initial
	case Settled:
		return t.spec.Target
	}
	p := float64(t.elapsed) / float64(t.spec.Duration)
	return Frame{
		Opacity: lerp(t.spec.Initial.Opacity, t.spec.Target.Opacity, p),
		OffsetY: lerp(t.spec.Initial.OffsetY, t.spec.Target.OffsetY, p),
	}
}

func lerp(a, b, p float64) float64 { return a + (b-a)*p }

// Style is the inline CSS for a frame.
func (f Frame) Style() string {
	return "opacity:" + formatFloat(f.Opacity) + ";transform:translateY(" + formatFloat(f.OffsetY) + "px)"
}

// Attrs marks an element for the reveal script. The initial frame is applied
// inline so the first paint already matches it; the content itself is always
// present in the markup.
func (s Spec) Attrs() g.Node {
	return g.Group{
		g.Attr("data-reveal", ""),
		g.Attr("data-reveal-once", strconv.FormatBool(s.Once)),
		g.Attr("data-reveal-duration", strconv.FormatInt(s.Duration.Milliseconds(), 10)),
		g.Attr("data-reveal-from", s.Initial.Style()),
		g.Attr("data-reveal-to", s.Target.Style()),
		g.Attr("style", s.Initial.Style()),
	}
}

// Script drives every [data-reveal] element with an IntersectionObserver.
// Once-only elements are unobserved after their first intersection.
func Script() g.Node {
	return g.El("script", g.Raw(script))
}

const script = `(function () {
  var els = document.querySelectorAll("[data-reveal]");
  if (!("IntersectionObserver" in window)) {
    els.forEach(function (el) { el.style.cssText = el.dataset.revealTo; });
    return;
  }
  var io = new IntersectionObserver(function (entries) {
    entries.forEach(function (e) {
      var el = e.target;
      if (e.isIntersecting) {
        el.style.transition = "opacity " + el.dataset.revealDuration + "ms, transform " + el.dataset.revealDuration + "ms";
        el.style.cssText += ";" + el.dataset.revealTo;
        if (el.dataset.revealOnce === "true") io.unobserve(el);
      } else if (el.dataset.revealOnce !== "true") {
        el.style.cssText += ";" + el.dataset.revealFrom;
      }
    });
  });
  els.forEach(function (el) { io.observe(el); });
})();`

func formatFloat(v float64) string {
	return fmt.Sprintf("%g", v)
}
