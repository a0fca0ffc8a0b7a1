package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/tabtray-control/internal/action"
	"github.com/atomicstack/tabtray-control/internal/app"
	"github.com/atomicstack/tabtray-control/internal/config"
	"github.com/atomicstack/tabtray-control/internal/tabs"
	"github.com/atomicstack/tabtray-control/internal/tabstore"
	"github.com/google/uuid"
)

type result struct {
	code   int
	out    string
	errOut string
}

type env struct {
	dir     string
	dataDir string
	base    []string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	e := &env{dir: dir, dataDir: filepath.Join(dir, "data")}
	e.base = []string{
		"--data-dir", e.dataDir,
		"--prefs-file", filepath.Join(dir, "prefs.toml"),
		"--log-file", filepath.Join(dir, "tabtray.log"),
		"--config", writeConfig(t, dir),
	}
	return e
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("sweep-interval = \"1h\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func (e *env) run(opts Options, args ...string) result {
	var out, errOut bytes.Buffer
	opts.Out = &out
	opts.ErrOut = &errOut
	all := append(append([]string(nil), args...), e.base...)
	code := Execute(context.Background(), all, opts)
	return result{code: code, out: out.String(), errOut: errOut.String()}
}

func (e *env) saveSession(t *testing.T, window uuid.UUID, list []tabs.Tab, selected string) {
	t.Helper()
	db, err := tabstore.Open(filepath.Join(e.dataDir, tabstore.FileName))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer db.Close()
	if err := db.SaveSession(context.Background(), window, list, selected); err != nil {
		t.Fatalf("save session: %v", err)
	}
}

func TestRootRunsTrayWithResolvedConfig(t *testing.T) {
	e := newEnv(t)
	var got app.Config
	var seen config.Config
	res := e.run(Options{
		Run: func(_ context.Context, cfg app.Config) error {
			got = cfg
			return nil
		},
		OnConfig: func(cfg config.Config) { seen = cfg },
	}, "--width", "90", "--private")

	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", res.code, res.errOut)
	}
	if got.Width != 90 || !got.Private {
		t.Fatalf("expected width 90 and private, got %+v", got)
	}
	if got.DataDir != e.dataDir {
		t.Fatalf("expected data dir %q, got %q", e.dataDir, got.DataDir)
	}
	if got.SweepInterval != time.Hour {
		t.Fatalf("expected sweep interval from config file, got %s", got.SweepInterval)
	}
	if len(seen.Args) == 0 || seen.Args[0] != "--width" {
		t.Fatalf("expected args recorded, got %v", seen.Args)
	}
	if seen.Flags["width"] != "90" {
		t.Fatalf("expected width flag recorded, got %q", seen.Flags["width"])
	}
}

func TestTraySubcommandRunsTray(t *testing.T) {
	e := newEnv(t)
	ran := false
	res := e.run(Options{Run: func(context.Context, app.Config) error {
		ran = true
		return nil
	}}, "tray")

	if res.code != 0 || !ran {
		t.Fatalf("expected tray to run, got code %d ran %v", res.code, ran)
	}
}

func TestInvalidConfigExitsWithTwo(t *testing.T) {
	e := newEnv(t)
	ran := false
	res := e.run(Options{Run: func(context.Context, app.Config) error {
		ran = true
		return nil
	}}, "--width", "-1")

	if res.code != 2 {
		t.Fatalf("expected exit 2, got %d", res.code)
	}
	if ran {
		t.Fatalf("expected tray not to run")
	}
	if !strings.Contains(res.errOut, "Configuration error:") || !strings.Contains(res.errOut, "width must be >= 0") {
		t.Fatalf("expected configuration error, got %q", res.errOut)
	}
}

func TestUnknownFlagExitsWithTwo(t *testing.T) {
	e := newEnv(t)
	res := e.run(Options{Run: func(context.Context, app.Config) error { return nil }}, "--bogus")
	if res.code != 2 {
		t.Fatalf("expected exit 2, got %d (%s)", res.code, res.errOut)
	}
}

func TestRunErrorExitsWithOne(t *testing.T) {
	e := newEnv(t)
	res := e.run(Options{Run: func(context.Context, app.Config) error {
		return errors.New("boom")
	}})

	if res.code != 1 {
		t.Fatalf("expected exit 1, got %d", res.code)
	}
	if !strings.Contains(res.errOut, "Error: boom") {
		t.Fatalf("expected error message, got %q", res.errOut)
	}
}

func TestListPrintsSavedWindows(t *testing.T) {
	e := newEnv(t)
	window := uuid.New()
	e.saveSession(t, window, []tabs.Tab{
		{UUID: "a", Title: "Hacker News", URL: "https://news.ycombinator.com", LastExecuted: time.Now()},
		{UUID: "b", Title: "Go Documentation", URL: "https://go.dev/doc", LastExecuted: time.Now()},
	}, "b")

	res := e.run(Options{}, "list")

	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", res.code, res.errOut)
	}
	for _, want := range []string{window.String(), "TITLE", "Hacker News", "https://go.dev/doc", "●"} {
		if !strings.Contains(res.out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, res.out)
		}
	}
}

func TestListJSON(t *testing.T) {
	e := newEnv(t)
	window := uuid.New()
	e.saveSession(t, window, []tabs.Tab{
		{UUID: "a", Title: "Weather", URL: "https://weather.gov", LastExecuted: time.Now()},
	}, "a")

	res := e.run(Options{}, "list", "-o", "json")

	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", res.code, res.errOut)
	}
	var listings []windowListing
	if err := json.Unmarshal([]byte(res.out), &listings); err != nil {
		t.Fatalf("decode output: %v\n%s", err, res.out)
	}
	if len(listings) != 1 || listings[0].Window != window || listings[0].Selected != "a" {
		t.Fatalf("expected one listing for %s, got %+v", window, listings)
	}
	if len(listings[0].Tabs) != 1 || listings[0].Tabs[0].Title != "Weather" {
		t.Fatalf("expected the weather tab, got %+v", listings[0].Tabs)
	}
}

func TestListEmptyAndSynced(t *testing.T) {
	e := newEnv(t)

	res := e.run(Options{}, "list")
	if res.code != 0 || !strings.Contains(res.out, "No saved windows.") {
		t.Fatalf("expected empty listing, got %d %q", res.code, res.out)
	}

	res = e.run(Options{}, "list", "--synced")
	if res.code != 0 || !strings.Contains(res.out, "No synced devices.") {
		t.Fatalf("expected no synced devices, got %d %q", res.code, res.out)
	}
}

func TestListRejectsUnknownOutput(t *testing.T) {
	e := newEnv(t)
	res := e.run(Options{}, "list", "-o", "xml")
	if res.code != 1 || !strings.Contains(res.errOut, `unknown output format "xml"`) {
		t.Fatalf("expected output format error, got %d %q", res.code, res.errOut)
	}
}

func TestReplayPrintsFinalState(t *testing.T) {
	e := newEnv(t)
	ctx := action.In(uuid.New())
	var b strings.Builder
	b.WriteString("# open the tray and add a tab\n")
	for _, act := range []action.Action{
		action.ShowScreen{Context: ctx, Screen: action.ScreenTabsTray},
		action.ShowScreen{Context: ctx, Screen: action.ScreenTabsPanel},
		action.TabPanelDidLoad{Context: ctx},
		action.AddNewTab{Context: ctx, Request: &tabs.Request{URL: "https://example.com"}},
	} {
		data, err := action.Marshal(act)
		if err != nil {
			t.Fatalf("marshal %s: %v", act.Type(), err)
		}
		b.Write(data)
		b.WriteByte('\n')
	}
	path := filepath.Join(e.dir, "session.jsonl")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write replay: %v", err)
	}

	res := e.run(Options{}, "replay", path)

	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", res.code, res.errOut)
	}
	if !strings.Contains(res.out, `"tabsPanel"`) {
		t.Fatalf("expected final state, got:\n%s", res.out)
	}
}

func TestReplayMissingFile(t *testing.T) {
	e := newEnv(t)
	res := e.run(Options{}, "replay", filepath.Join(e.dir, "missing.jsonl"))
	if res.code != 1 || !strings.Contains(res.errOut, "opening replay file") {
		t.Fatalf("expected missing file error, got %d %q", res.code, res.errOut)
	}
}

func TestVersionSkipsConfiguration(t *testing.T) {
	var out bytes.Buffer
	code := Execute(context.Background(), []string{"version", "--short", "--width", "-1"}, Options{Version: "1.2.3", Out: &out, ErrOut: &bytes.Buffer{}})
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "1.2.3") {
		t.Fatalf("expected version in output, got %q", out.String())
	}
}

func TestSettingsShowsPreferences(t *testing.T) {
	e := newEnv(t)
	prefsFile := filepath.Join(e.dir, "prefs.toml")
	data := "[theme]\nuse_system_appearance = false\nmanual = \"dark\"\n\n[inactive_tabs]\nenabled = true\nafter_days = 30\n\n[content_blocking]\nenabled = true\nstrength = \"strict\"\n"
	if err := os.WriteFile(prefsFile, []byte(data), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	res := e.run(Options{}, "settings")

	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", res.code, res.errOut)
	}
	for _, want := range []string{"Theme", "dark", "After 30 days", "Tracking protection", "Strict"} {
		if !strings.Contains(res.out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, res.out)
		}
	}
}

func TestSettingsDefaults(t *testing.T) {
	e := newEnv(t)
	res := e.run(Options{}, "settings")
	if res.code != 0 {
		t.Fatalf("expected exit 0, got %d (%s)", res.code, res.errOut)
	}
	for _, want := range []string{"System", "After 14 days", "Standard"} {
		if !strings.Contains(res.out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, res.out)
		}
	}
}
