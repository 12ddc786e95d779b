package desktop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"hypr-switch/pkg/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(
		logger.WithLevel(zerolog.Disabled),
		logger.WithFile(filepath.Join(t.TempDir(), "test.log")),
	)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	return log
}

func writeEntry(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func newTestResolver(t *testing.T, dir string) *Resolver {
	t.Helper()
	r := NewResolver(newTestLogger(t), []string{dir})
	t.Cleanup(func() { r.Close() })
	return r
}

func TestResolveDefaultsWhenMissing(t *testing.T) {
	r := newTestResolver(t, t.TempDir())

	e := r.Resolve("myapp.Weird")
	if e.Name != "myapp.Weird" || e.Icon != "myapp.Weird" {
		t.Errorf("expected class defaults, got %+v", e)
	}
}

func TestResolveParsesNameAndIcon(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "firefox.desktop",
		"[Desktop Entry]\nName=My App\nIcon=my-icon\n[Other]\nName=Ignored\n")
	r := newTestResolver(t, dir)

	e := r.Resolve("firefox")
	if e.Name != "My App" || e.Icon != "my-icon" {
		t.Errorf("expected My App/my-icon, got %+v", e)
	}
}

func TestResolveFirstOccurrenceWins(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "kitty.desktop",
		"[Desktop Entry]\nName=First\nName=Second\nIcon=one\nIcon=two\n")
	r := newTestResolver(t, dir)

	e := r.Resolve("kitty")
	if e.Name != "First" || e.Icon != "one" {
		t.Errorf("expected first occurrences, got %+v", e)
	}
}

func TestResolveSegmentFallback(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "firefox.desktop",
		"[Desktop Entry]\nName=Firefox\nIcon=firefox\n")
	r := newTestResolver(t, dir)

	e := r.Resolve("org.mozilla.firefox")
	if e.Name != "Firefox" || e.Icon != "firefox" {
		t.Errorf("expected segment fallback hit, got %+v", e)
	}
}

func TestResolveExactBeatsSegment(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "org.gnome.Calculator.desktop",
		"[Desktop Entry]\nName=Exact\n")
	writeEntry(t, dir, "Calculator.desktop",
		"[Desktop Entry]\nName=Segment\n")
	r := newTestResolver(t, dir)

	e := r.Resolve("org.gnome.Calculator")
	if e.Name != "Exact" {
		t.Errorf("expected exact filename to win, got %+v", e)
	}
}

func TestResolveIgnoresKeysOutsideSection(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "alacritty.desktop",
		"Name=TooEarly\n[Desktop Entry]\nIcon=term\n[Desktop Action New]\nName=TooLate\n")
	r := newTestResolver(t, dir)

	e := r.Resolve("alacritty")
	if e.Name != "alacritty" {
		t.Errorf("expected Name default, got %q", e.Name)
	}
	if e.Icon != "term" {
		t.Errorf("expected Icon from entry section, got %q", e.Icon)
	}
}

func TestResolveSkipsCommentsAndBlanks(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "mpv.desktop",
		"[Desktop Entry]\n\n# Name=Commented\n; Name=AlsoCommented\nName=mpv Media Player\n")
	r := newTestResolver(t, dir)

	e := r.Resolve("mpv")
	if e.Name != "mpv Media Player" {
		t.Errorf("expected comment lines skipped, got %q", e.Name)
	}
}

func TestResolveEmptyValueFallsThrough(t *testing.T) {
	dir := t.TempDir()
	writeEntry(t, dir, "code.desktop",
		"[Desktop Entry]\nName=\nName=Code Editor\n")
	r := newTestResolver(t, dir)

	e := r.Resolve("code")
	if e.Name != "Code Editor" {
		t.Errorf("expected empty value to fall through, got %q", e.Name)
	}
}

func TestResolveUnreadableEntryFile(t *testing.T) {
	dir := t.TempDir()
	// A directory carrying the entry name: stat succeeds, reading does not.
	if err := os.Mkdir(filepath.Join(dir, "broken.desktop"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	r := newTestResolver(t, dir)

	e := r.Resolve("broken")
	if e.Name != "broken" || e.Icon != "broken" {
		t.Errorf("expected defaults for unreadable entry, got %+v", e)
	}
}
