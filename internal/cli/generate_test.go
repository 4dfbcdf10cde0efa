package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/autoreadme/pkg/errors"
	"github.com/matzehuels/autoreadme/pkg/history"
	"github.com/matzehuels/autoreadme/pkg/readme"
)

type fakePrompter struct {
	t        *testing.T
	action   menuAction
	options  readme.Options
	err      error
	disabled bool

	menuCalls   int
	optionCalls int
	gotDefaults readme.Options
}

func (p *fakePrompter) Menu() (menuAction, error) {
	if p.disabled {
		p.t.Fatal("Menu called in non-interactive mode")
	}
	p.menuCalls++
	return p.action, nil
}

func (p *fakePrompter) ReadmeOptions(defaults readme.Options) (readme.Options, error) {
	if p.disabled {
		p.t.Fatal("ReadmeOptions called in non-interactive mode")
	}
	p.optionCalls++
	p.gotDefaults = defaults
	return p.options, p.err
}

type stubLookup struct {
	url string
}

func (s stubLookup) RemoteURL(ctx context.Context, dir, name string) (string, error) {
	if s.url == "" {
		return "", errors.New(errors.ErrCodeRemoteLookup, "no remote named %q", name)
	}
	return s.url, nil
}

type testEnv struct {
	cli       *CLI
	store     *history.FileStore
	project   string
	configDir string
}

func newTestEnv(t *testing.T, manifest string) *testEnv {
	t.Helper()

	configDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configDir)
	t.Setenv("HOME", t.TempDir())

	project := t.TempDir()
	if manifest != "" {
		if err := os.WriteFile(filepath.Join(project, "package.json"), []byte(manifest), 0644); err != nil {
			t.Fatal(err)
		}
	}

	store, err := history.NewFileStore(filepath.Join(t.TempDir(), ".autoreadme"))
	if err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	c.history = store
	c.remotes = stubLookup{}
	c.prompt = &fakePrompter{t: t, disabled: true}

	return &testEnv{cli: c, store: store, project: project, configDir: configDir}
}

func (e *testEnv) execute(t *testing.T, args ...string) error {
	t.Helper()
	root := e.cli.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func (e *testEnv) readmeText(t *testing.T) (string, bool) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(e.project, readme.FileName))
	if os.IsNotExist(err) {
		return "", false
	}
	if err != nil {
		t.Fatal(err)
	}
	return string(data), true
}

func (e *testEnv) entries(t *testing.T) []history.Entry {
	t.Helper()
	entries, err := e.store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	return entries
}

const widgetManifest = `{
  "name": "widget",
  "description": "Makes widgets",
  "version": "0.3.0",
  "dependencies": {"a": "1.0", "b": "2.0"},
  "repository": {"url": "git+https://example.com/widget.git"}
}`

func TestGenerateNonInteractive(t *testing.T) {
	env := newTestEnv(t, widgetManifest)

	err := env.execute(t, "generate", "--yes", "--no-banner", "--dir", env.project, "--template", "cli-tool", "--badges")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	out, ok := env.readmeText(t)
	if !ok {
		t.Fatal("README.md not written")
	}
	for _, want := range []string{"# widget", "## Commands", "img.shields.io", "**Dependencies:** a, b", "https://example.com/widget"} {
		if !strings.Contains(out, want) {
			t.Errorf("README missing %q", want)
		}
	}

	entries := env.entries(t)
	if len(entries) != 2 {
		t.Fatalf("history has %d entries, want 2", len(entries))
	}
	if entries[0].Message != "Project metadata retrieved for widget" {
		t.Errorf("entries[0] = %q", entries[0].Message)
	}
	if !strings.HasPrefix(entries[1].Message, `README generated using "cli-tool" template`) {
		t.Errorf("entries[1] = %q", entries[1].Message)
	}

	ignore, err := os.ReadFile(filepath.Join(env.project, ".gitignore"))
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if !strings.Contains(string(ignore), env.store.Dir()) {
		t.Errorf(".gitignore = %q, want it to list %q", ignore, env.store.Dir())
	}
}

func TestGenerateRemoteFallback(t *testing.T) {
	env := newTestEnv(t, `{"name": "tool"}`)
	env.cli.remotes = stubLookup{url: "https://github.com/acme/tool.git"}

	if err := env.execute(t, "generate", "-y", "--no-banner", "-C", env.project); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	out, _ := env.readmeText(t)
	if !strings.Contains(out, "[https://github.com/acme/tool](https://github.com/acme/tool)") {
		t.Errorf("README should link the origin remote:\n%s", out)
	}
}

func TestGenerateReportsDomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		args     []string
	}{
		{"missing manifest", "", nil},
		{"malformed manifest", `{"name": `, nil},
		{"unknown template", widgetManifest, []string{"--template", "fancy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.manifest)

			args := append([]string{"generate", "--yes", "--no-banner", "--dir", env.project}, tt.args...)
			if err := env.execute(t, args...); err != nil {
				t.Fatalf("generate should report and return cleanly, got %v", err)
			}
			if _, ok := env.readmeText(t); ok {
				t.Error("README.md written despite failure")
			}
			if n := len(env.entries(t)); n != 0 {
				t.Errorf("history has %d entries, want 0", n)
			}
		})
	}
}

func TestGenerateInteractive(t *testing.T) {
	env := newTestEnv(t, widgetManifest)
	prompt := &fakePrompter{
		t:       t,
		action:  actionGenerate,
		options: readme.Options{Template: readme.OpenSource, Badges: false},
	}
	env.cli.prompt = prompt

	if err := env.execute(t, "generate", "--no-banner", "--dir", env.project); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if prompt.menuCalls != 1 || prompt.optionCalls != 1 {
		t.Errorf("prompts: menu=%d options=%d, want 1 each", prompt.menuCalls, prompt.optionCalls)
	}
	if prompt.gotDefaults != (readme.Options{Template: readme.Basic, Badges: true}) {
		t.Errorf("prompt defaults = %+v, want basic with badges", prompt.gotDefaults)
	}

	out, ok := env.readmeText(t)
	if !ok {
		t.Fatal("README.md not written")
	}
	if !strings.Contains(out, "## Code of Conduct") {
		t.Error("README missing open-source sections")
	}
	if strings.Contains(out, "img.shields.io") {
		t.Error("README contains badges although they were declined")
	}
}

func TestGenerateMenuActions(t *testing.T) {
	tests := []struct {
		name        string
		action      menuAction
		optionsErr  error
		wantReadme  bool
		wantOptions int
	}{
		{name: "exit", action: actionExit},
		{name: "logs", action: actionLogs},
		{name: "debug", action: actionDebug, wantReadme: true, wantOptions: 1},
		{name: "aborted options", action: actionGenerate, optionsErr: errAborted, wantOptions: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, widgetManifest)
			prompt := &fakePrompter{
				t:       t,
				action:  tt.action,
				options: readme.Options{Template: readme.Basic},
				err:     tt.optionsErr,
			}
			env.cli.prompt = prompt

			if err := env.execute(t, "generate", "--no-banner", "--dir", env.project); err != nil {
				t.Fatalf("generate failed: %v", err)
			}
			if _, ok := env.readmeText(t); ok != tt.wantReadme {
				t.Errorf("README written = %v, want %v", ok, tt.wantReadme)
			}
			if prompt.optionCalls != tt.wantOptions {
				t.Errorf("ReadmeOptions calls = %d, want %d", prompt.optionCalls, tt.wantOptions)
			}
		})
	}
}

func TestGenerateUsesConfigDefaults(t *testing.T) {
	env := newTestEnv(t, widgetManifest)

	cfgDir := filepath.Join(env.configDir, appName)
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		t.Fatal(err)
	}
	cfg := "template = \"api-docs\"\nbadges = false\nbanner = false\npatch_gitignore = false\n"
	if err := os.WriteFile(filepath.Join(cfgDir, configFileName), []byte(cfg), 0644); err != nil {
		t.Fatal(err)
	}

	if err := env.execute(t, "generate", "--yes", "--dir", env.project); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	out, _ := env.readmeText(t)
	if !strings.Contains(out, "## API Endpoints") {
		t.Error("config template not applied")
	}
	if strings.Contains(out, "img.shields.io") {
		t.Error("config badges = false not applied")
	}
	if _, err := os.Stat(filepath.Join(env.project, ".gitignore")); !os.IsNotExist(err) {
		t.Error(".gitignore patched although patch_gitignore = false")
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	env := newTestEnv(t, widgetManifest)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("template = "), 0644); err != nil {
		t.Fatal(err)
	}

	err := env.execute(t, "generate", "--config", path, "--yes", "--dir", env.project)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("generate error = %v, want %v", err, errors.ErrCodeInvalidConfig)
	}
}

func TestLogsCommand(t *testing.T) {
	env := newTestEnv(t, "")
	ctx := context.Background()
	if _, err := env.store.Append(ctx, "Project metadata retrieved for widget"); err != nil {
		t.Fatal(err)
	}

	if err := env.execute(t, "logs"); err != nil {
		t.Fatalf("logs failed: %v", err)
	}
	if n := len(env.entries(t)); n != 1 {
		t.Fatalf("logs should not modify history, got %d entries", n)
	}

	if err := env.execute(t, "logs", "--clear"); err != nil {
		t.Fatalf("logs --clear failed: %v", err)
	}
	if n := len(env.entries(t)); n != 0 {
		t.Errorf("history has %d entries after --clear", n)
	}
}
