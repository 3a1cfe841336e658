package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"coffeeflavours/internal/viewstate"
)

const (
	springFrequency = 8.0
	springDamping   = 1.0 // critically damped, no overshoot
	settleEpsilon   = 0.01
	slideColumns    = 12
)

// frameMsg advances the animation with the given generation.
type frameMsg struct {
	gen int
}

// Animator plays a spring-driven slide-in for the layer that a transition
// reveals. A new transition restarts it, so exit and enter never overlap.
// It only reads transitions; the controller state is already final.
type Animator struct {
	enabled bool
	frame   time.Duration
	spring  harmonica.Spring

	gen      int
	pos, vel float64
	active   bool
	layer    viewstate.Screen
	coffee   bool
}

// NewAnimator returns an animator ticking at fps. A disabled animator
// ignores every transition.
func NewAnimator(enabled bool, fps int) *Animator {
	if fps <= 0 {
		fps = 60
	}
	return &Animator{
		enabled: enabled,
		frame:   time.Second / time.Duration(fps),
		spring:  harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
		pos:     1,
	}
}

// Start begins the animation for t and returns the first frame tick.
func (a *Animator) Start(t viewstate.Transition) tea.Cmd {
	if !a.enabled || (!t.ScreenChanged() && !t.CoffeeChanged()) {
		return nil
	}
	a.gen++
	a.pos, a.vel = 0, 0
	a.active = true
	a.layer = t.To.Screen()
	a.coffee = !t.ScreenChanged()
	return a.tick()
}

// Update steps the spring on a frame of the current generation.
func (a *Animator) Update(msg frameMsg) tea.Cmd {
	if !a.active || msg.gen != a.gen {
		return nil
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, 1)
	if math.Abs(1-a.pos) < settleEpsilon && math.Abs(a.vel) < settleEpsilon {
		a.pos, a.vel = 1, 0
		a.active = false
		return nil
	}
	return a.tick()
}

func (a *Animator) tick() tea.Cmd {
	gen := a.gen
	return tea.Tick(a.frame, func(time.Time) tea.Msg {
		return frameMsg{gen: gen}
	})
}

// Active reports whether an animation is in flight.
func (a *Animator) Active() bool {
	return a.active
}

// Layer returns the screen being animated in.
func (a *Animator) Layer() viewstate.Screen {
	return a.layer
}

// Progress is 0 at the start of an animation and 1 when settled.
func (a *Animator) Progress() float64 {
	if !a.active {
		return 1
	}
	return math.Max(0, math.Min(1, a.pos))
}

// Offset returns the current slide distance in columns.
func (a *Animator) Offset() int {
	return int(math.Round((1 - a.Progress()) * slideColumns))
}

// Apply shifts view right by the current offset when screen is the layer
// being animated. Coffee changes slide half the distance.
func (a *Animator) Apply(screen viewstate.Screen, view string) string {
	if !a.active || screen != a.layer {
		return view
	}
	off := a.Offset()
	if a.coffee {
		off /= 2
	}
	if off == 0 {
		return view
	}
	pad := strings.Repeat(" ", off)
	lines := strings.Split(view, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
