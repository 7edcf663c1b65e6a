package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWithOptions_Invalid(t *testing.T) {
	cases := []Options{
		{Level: "loud", Format: "text", Output: "stderr"},
		{Level: "info", Format: "xml", Output: "stderr"},
		{Level: "info", Format: "text", Output: "syslog"},
		{Level: "info", Format: "text", Output: "file"},
	}
	for _, opts := range cases {
		if err := InitWithOptions(opts); err == nil {
			t.Errorf("Expected error for %+v", opts)
		}
	}
}

func TestInitWithOptions_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	err := InitWithOptions(Options{Level: "debug", Format: "json", Output: "file", FilePath: path, MaxSizeMB: 1})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer Init(false)

	if GetLogger().GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", GetLogger().GetLevel())
	}

	WithField("semester", "Fall 2026").Info("semester added")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	if !strings.Contains(string(data), `"semester":"Fall 2026"`) {
		t.Errorf("Expected JSON entry with semester field, got %s", data)
	}
}
