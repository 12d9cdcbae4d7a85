package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dipart/pkg/buildinfo"
	errs "github.com/matzehuels/dipart/pkg/errors"
)

const tinySpec = `
name = "ATtiny412"
dip = 4
width = 300
1 = "VDD, VCC"
2 = "PA6"
3 = "PA7"
4 = "PA1"
`

// writeFile writes content to name inside a fresh temp directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

// execute runs the root command with args and an isolated config home.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, logs bytes.Buffer
	c := New(&logs, log.InfoLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&logs)

	err = root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestRootCommandSubcommands(t *testing.T) {
	root := New(os.Stderr, LogInfo).RootCommand()

	for _, name := range []string{"render", "view", "inspect", "completion"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("Find(%q) = %v, %v", name, cmd, err)
		}
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("--version error = %v", err)
	}
	want := "dipart version " + buildinfo.Version
	if !strings.HasPrefix(stdout, want) {
		t.Errorf("--version = %q, want prefix %q", stdout, want)
	}
}

func TestUnknownFlag(t *testing.T) {
	_, _, err := execute(t, "render", "--upside-down", "chip.toml")
	if !errs.Is(err, errs.ErrCodeInvalidArgs) {
		t.Errorf("error = %v, want %v", err, errs.ErrCodeInvalidArgs)
	}
	if got := ExitCode(err); got != ExitUsage {
		t.Errorf("ExitCode() = %d, want %d", got, ExitUsage)
	}
}

func TestMissingFileArgument(t *testing.T) {
	for _, name := range []string{"render", "view", "inspect"} {
		_, _, err := execute(t, name)
		if !errs.Is(err, errs.ErrCodeInvalidArgs) {
			t.Errorf("%s without file: error = %v, want %v", name, err, errs.ErrCodeInvalidArgs)
		}
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"args", errs.New(errs.ErrCodeInvalidArgs, "bad"), ExitUsage},
		{"config", errs.New(errs.ErrCodeInvalidConfig, "bad"), ExitUsage},
		{"not found", errs.New(errs.ErrCodeFileNotFound, "missing"), ExitFile},
		{"io", errs.New(errs.ErrCodeIO, "unreadable"), ExitFile},
		{"spec", errs.New(errs.ErrCodeInvalidSpec, "no name"), ExitSpec},
		{"internal", errs.New(errs.ErrCodeInternal, "oops"), ExitFailure},
		{"plain", context.DeadlineExceeded, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	got := FormatError(errs.New(errs.ErrCodeInvalidSpec, "missing pin 3 definition"))
	if !strings.HasSuffix(got, " missing pin 3 definition") {
		t.Errorf("FormatError() = %q, want the message without code", got)
	}
	if strings.Contains(got, string(errs.ErrCodeInvalidSpec)) {
		t.Errorf("FormatError() = %q, should not contain the code", got)
	}
}

func TestCompletion(t *testing.T) {
	stdout, _, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(stdout, "dipart") {
		t.Error("bash completion should mention dipart")
	}
}
