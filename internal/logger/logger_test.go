package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chequesaathi/config"

	"github.com/sirupsen/logrus"
)

func TestSetup_WritesToRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	log := Setup(config.LogConfig{File: path, Level: "debug", MaxSizeMB: 1, MaxBackups: 1, MaxAgeDays: 1})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}
	log.WithField("cheque_id", "abc").Info("status changed")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q) error = %v", path, err)
	}
	if !strings.Contains(string(data), "cheque_id=abc") {
		t.Errorf("log file = %q, want cheque_id field", data)
	}
}

func TestSetup_BadLevelFallsBackToInfo(t *testing.T) {
	log := Setup(config.LogConfig{Level: "loud"})
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	if log.GetLevel() != logrus.InfoLevel {
		t.Errorf("level = %v, want info", log.GetLevel())
	}
}
