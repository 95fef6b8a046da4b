package exitcode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/git-smee/git-smee/internal/config"
	"github.com/git-smee/git-smee/internal/hooks"
	"github.com/git-smee/git-smee/internal/install"
)

func TestFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"success", nil, OK, ""},
		{
			name:     "command exit code passes through",
			err:      &hooks.ExecutionError{Kind: hooks.KindExitStatus, Hook: config.PreCommit, Command: "make lint", Code: 2},
			wantCode: 2,
			wantMsg:  `command #1 "make lint" exited with code 2`,
		},
		{
			name:     "wrapped execution error",
			err:      fmt.Errorf("run: %w", &hooks.ExecutionError{Kind: hooks.KindExitStatus, Hook: config.PrePush, Code: 255}),
			wantCode: 255,
		},
		{
			name:     "spawn failure",
			err:      &hooks.ExecutionError{Kind: hooks.KindSpawn, Hook: config.PreCommit, Shell: "sh -c", Err: errors.New("not found")},
			wantCode: 127,
			wantMsg:  "could not start",
		},
		{
			name:     "signal",
			err:      &hooks.ExecutionError{Kind: hooks.KindSignal, Hook: config.PreCommit, Signal: 9},
			wantCode: 137,
		},
		{
			name:     "empty configuration",
			err:      &config.ConfigError{Kind: config.KindNoHooks, Path: "/r/.git-smee.toml"},
			wantCode: Config,
			wantMsg:  "no hooks present",
		},
		{
			name:     "path error",
			err:      &config.PathError{Kind: config.KindMissingParent, Source: config.SourceExplicit, Path: "/nope/x.toml"},
			wantCode: Config,
		},
		{
			name:     "install conflict",
			err:      &install.InstallError{Kind: install.KindConflict, Hooks: []config.HookName{config.PreCommit}},
			wantCode: Config,
			wantMsg:  "--force",
		},
		{"interrupted", fmt.Errorf("git: %w", context.Canceled), Interrupted, "interrupted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			code, msg := From(tt.err)
			if code != tt.wantCode {
				t.Errorf("From() code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(msg, tt.wantMsg) {
				t.Errorf("From() message = %q, want it to contain %q", msg, tt.wantMsg)
			}
			if tt.err != nil && msg == "" {
				t.Error("From() message is empty for a non-nil error")
			}
			for _, leak := range []string{"Kind", "*config.", "*hooks.", "*install."} {
				if strings.Contains(msg, leak) {
					t.Errorf("message %q exposes internal identifier %q", msg, leak)
				}
			}
		})
	}
}
