package logging

import (
	"github.com/sirupsen/logrus"

	"coffeeflavours/internal/viewstate"
)

// TransitionLogger writes one debug entry per view transition.
type TransitionLogger struct {
	Log *logrus.Logger
}

// Ensure TransitionLogger implements viewstate.Observer.
var _ viewstate.Observer = (*TransitionLogger)(nil)

// OnTransition implements viewstate.Observer.
func (l *TransitionLogger) OnTransition(t viewstate.Transition) {
	l.Log.WithFields(logrus.Fields{
		"op":          string(t.Op),
		"from":        t.From.Screen().String(),
		"to":          t.To.Screen().String(),
		"coffee_from": t.From.SelectedIndex,
		"coffee_to":   t.To.SelectedIndex,
		"overlays":    t.To.OpenOverlays(),
	}).Debug("view transition")
}
