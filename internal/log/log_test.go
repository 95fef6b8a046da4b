package log

import (
	"bytes"
	"context"
	"testing"
	"time"
)

// emitAll writes one message through every Logger method, the way a hook run
// with a failed parallel sibling does.
func emitAll(l *Logger) {
	l.Printf("installed %d hooks\n", 2)
	l.Println("no hooks installed in", ".git/hooks")
	l.Warn("hook %q is not configured in %s", "pre-push", ".git-smee.toml")
	l.Debug("running hook", "hook", "pre-commit", "entries", 3)
	done := l.Command("", "sh -c", "API_TOKEN=**** ./deploy.sh")
	done(1500 * time.Microsecond)
}

func TestLogger_VerbosityMatrix(t *testing.T) {
	t.Parallel()

	const (
		normal = "installed 2 hooks\n" +
			"no hooks installed in .git/hooks\n" +
			"warning: hook \"pre-push\" is not configured in .git-smee.toml\n"
		debug = "running hook hook=pre-commit entries=3\n" +
			"$ sh -c API_TOKEN=**** ./deploy.sh\n" +
			"  (2ms)\n"
	)

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    string
	}{
		{"default", false, false, normal},
		{"verbose adds debug and commands", true, false, normal + debug},
		{"quiet silences everything", false, true, ""},
		{"quiet wins over verbose", true, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, tt.verbose, tt.quiet)
			emitAll(l)
			if got := buf.String(); got != tt.want {
				t.Errorf("output =\n%q\nwant\n%q", got, tt.want)
			}
			if got := l.IsVerbose(); got != (tt.verbose && !tt.quiet) {
				t.Errorf("IsVerbose() = %v", got)
			}
		})
	}
}

func TestCommand_ShowsWorkingDirectory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	l.Command("/repo", "git", "rev-parse", "--git-path", "hooks")(0)

	want := "[/repo] $ git rev-parse --git-path hooks\n  (0s)\n"
	if got := buf.String(); got != want {
		t.Errorf("Command output = %q, want %q", got, want)
	}
}

func TestDebug_DropsDanglingKey(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, true, false)
	l.Debug("config ignored keys", "path", ".git-smee.toml", "count")

	want := "config ignored keys path=.git-smee.toml\n"
	if got := buf.String(); got != want {
		t.Errorf("Debug output = %q, want %q", got, want)
	}
}

func TestWarn_UnstyledForBuffers(t *testing.T) {
	t.Parallel()

	// Only *os.File terminals get a styled prefix.
	l := New(&bytes.Buffer{}, false, false)
	if l.color {
		t.Error("logger writing to a buffer should not use color")
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	l := New(&bytes.Buffer{}, true, false)
	if got := FromContext(WithLogger(context.Background(), l)); got != l {
		t.Error("FromContext did not return the attached logger")
	}

	// Without a logger, runs stay silent and do not panic.
	fallback := FromContext(context.Background())
	if fallback.IsVerbose() {
		t.Error("fallback logger should not be verbose")
	}
	emitAll(fallback)
}
