package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"coffeeflavours/internal/viewstate"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coffee.log")
	log, closer, err := New("info", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("brewing")
	log.Debug("hidden")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(b), "brewing") {
		t.Errorf("expected info entry in log, got %q", b)
	}
	if strings.Contains(string(b), "hidden") {
		t.Errorf("debug entry should be filtered at info level, got %q", b)
	}
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	log, closer, err := New("debug", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("nowhere")
	if err := closer.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestSetLevel(t *testing.T) {
	log := logrus.New()
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"":        logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
	}
	for in, want := range tests {
		if err := SetLevel(log, in); err != nil {
			t.Fatalf("SetLevel(%q): %v", in, err)
		}
		if log.GetLevel() != want {
			t.Errorf("SetLevel(%q): expected %s, got %s", in, want, log.GetLevel())
		}
	}
	if err := SetLevel(log, "loud"); err == nil {
		t.Error("SetLevel(loud): expected error")
	}
}

func TestTransitionLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	obs := &TransitionLogger{Log: log}
	obs.OnTransition(viewstate.Transition{
		Op:   viewstate.OpOpenSearch,
		From: viewstate.DefaultState(),
		To:   viewstate.State{SearchOpen: true},
	})

	out := buf.String()
	for _, want := range []string{"view transition", "op=open_search", "from=home", "to=search"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}
