package domain

import "time"

// DrawerState is the settled position of the side drawer.
type DrawerState string

const (
	DrawerClosed DrawerState = "closed" // settled offset = -width
	DrawerOpen   DrawerState = "open"   // settled offset = 0
)

const (
	// OpenDuration and CloseDuration are the settle animation lengths.
	// Open is deliberately slightly slower for a more noticeable entrance.
	OpenDuration  = 250 * time.Millisecond
	CloseDuration = 200 * time.Millisecond

	// DefaultVelocityThreshold is the rightward flick velocity above which
	// a release opens the drawer regardless of distance traveled.
	DefaultVelocityThreshold = 500.0
)

// settle models an in-flight animation from one offset to another over a
// fixed duration. Offsets interpolate linearly.
type settle struct {
	from     float64
	to       float64
	start    time.Time
	duration time.Duration
}

func (s *settle) offsetAt(t time.Time) float64 {
	elapsed := t.Sub(s.start)
	if elapsed <= 0 {
		return s.from
	}
	if elapsed >= s.duration {
		return s.to
	}
	frac := float64(elapsed) / float64(s.duration)
	return s.from + (s.to-s.from)*frac
}

// Drawer is the navigation drawer state machine. It merges a continuous
// drag signal with a settled animated position and decides open-vs-closed
// on gesture release. The rendered position is always settled offset plus
// transient drag offset; the drag offset is zero whenever no gesture is
// active.
type Drawer struct {
	width             float64
	velocityThreshold float64
	state             DrawerState
	settled           float64
	drag              float64
	dragging          bool
	anim              *settle
	enabled           bool
	now               func() time.Time
}

// NewDrawer builds a closed drawer of the given width.
func NewDrawer(width float64) *Drawer {
	return NewDrawerAt(width, DefaultVelocityThreshold, time.Now)
}

// NewDrawerAt builds a drawer with an injectable clock and velocity
// threshold, for tests and configuration overrides.
func NewDrawerAt(width, velocityThreshold float64, now func() time.Time) *Drawer {
	return &Drawer{
		width:             width,
		velocityThreshold: velocityThreshold,
		state:             DrawerClosed,
		settled:           -width,
		enabled:           true,
		now:               now,
	}
}

// State returns the settled state the drawer is in or animating towards.
func (d *Drawer) State() DrawerState {
	return d.state
}

// Width returns the drawer width.
func (d *Drawer) Width() float64 {
	return d.width
}

// Dragging reports whether a gesture is currently in progress.
func (d *Drawer) Dragging() bool {
	return d.dragging
}

// SetEnabled toggles gesture handling. While disabled (a modal is open)
// Begin/Update/End are inert; this is a hard precondition, not advisory.
func (d *Drawer) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// Enabled reports whether the gesture recognizer is active.
func (d *Drawer) Enabled() bool {
	return d.enabled
}

// Offset returns the current rendered offset: settled plus drag while a
// gesture is active, the interpolated settle position while animating,
// and the resting offset otherwise.
func (d *Drawer) Offset() float64 {
	return d.OffsetAt(d.now())
}

// OffsetAt is Offset evaluated at an explicit instant.
func (d *Drawer) OffsetAt(t time.Time) float64 {
	if d.dragging {
		return d.settled + d.drag
	}
	if d.anim != nil {
		return d.anim.offsetAt(t)
	}
	return d.settled
}

// BeginDrag starts a gesture. Any in-flight settle animation is halted at
// its current value so the position never snaps backward when a new
// gesture interrupts an animation.
func (d *Drawer) BeginDrag() {
	if !d.enabled {
		return
	}
	if d.anim != nil {
		d.settled = d.anim.offsetAt(d.now())
		d.anim = nil
	}
	d.dragging = true
	d.drag = 0
}

// DragUpdate records the gesture's running translation. No state
// transition happens until release.
func (d *Drawer) DragUpdate(translationX float64) {
	if !d.enabled || !d.dragging {
		return
	}
	d.drag = translationX
}

// DragEnd settles the gesture. The drawer opens if the release position
// passed the midpoint or the rightward velocity exceeds the threshold;
// otherwise it closes. A settle animation then runs from the release
// position to the target resting offset. Returns the resulting state.
func (d *Drawer) DragEnd(translationX, velocityX float64) DrawerState {
	if !d.enabled {
		return d.state
	}
	finalPosition := d.settled + translationX
	d.drag = 0
	d.dragging = false

	if finalPosition > -d.width/2 || velocityX > d.velocityThreshold {
		d.animateTo(DrawerOpen, finalPosition, 0, OpenDuration)
	} else {
		d.animateTo(DrawerClosed, finalPosition, -d.width, CloseDuration)
	}
	return d.state
}

// DragCancel is treated identically to DragEnd: the same snap decision
// applies to a cancelled gesture.
func (d *Drawer) DragCancel(translationX, velocityX float64) DrawerState {
	return d.DragEnd(translationX, velocityX)
}

// Open animates the drawer to its open resting offset.
func (d *Drawer) Open() {
	d.animateTo(DrawerOpen, d.OffsetAt(d.now()), 0, OpenDuration)
}

// Close animates the drawer to its closed resting offset.
func (d *Drawer) Close() {
	d.animateTo(DrawerClosed, d.OffsetAt(d.now()), -d.width, CloseDuration)
}

func (d *Drawer) animateTo(state DrawerState, from, to float64, duration time.Duration) {
	d.state = state
	d.settled = to
	d.anim = &settle{from: from, to: to, start: d.now(), duration: duration}
}
