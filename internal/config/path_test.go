package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolve_Precedence(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	a := filepath.Join(root, "a.toml")
	b := filepath.Join(root, "b.toml")

	tests := []struct {
		name    string
		in      PathInputs
		want    string
		wantSrc Source
	}{
		{"explicit wins", PathInputs{Explicit: a, Env: b, RepoRoot: root}, a, SourceExplicit},
		{"env without explicit", PathInputs{Env: b, RepoRoot: root}, b, SourceEnv},
		{"default without both", PathInputs{RepoRoot: root}, filepath.Join(root, DefaultFileName), SourceDefault},
		{"blank explicit is not given", PathInputs{Explicit: "  ", Env: b, RepoRoot: root}, b, SourceEnv},
		{"explicit trailing space is kept", PathInputs{Explicit: a + " ", RepoRoot: root}, a + " ", SourceExplicit},
		{"env leading space is kept", PathInputs{Env: filepath.Join(root, " b.toml"), RepoRoot: root}, filepath.Join(root, " b.toml"), SourceEnv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, src, err := ResolvePath(tt.in)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
			if src != tt.wantSrc {
				t.Errorf("Source = %q, want %q", src, tt.wantSrc)
			}
		})
	}
}

func TestResolve_ExpandsHome(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	r := Resolver{HomeDir: func() (string, error) { return home, nil }}

	got, _, err := r.Resolve(PathInputs{Explicit: "~/smee.toml"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if want := filepath.Join(home, "smee.toml"); string(got) != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
	if strings.Contains(string(got), "~") {
		t.Errorf("resolved path %q still contains ~", got)
	}

	got, _, err = r.Resolve(PathInputs{Env: "~/nested/../smee.toml"})
	if err != nil {
		t.Fatalf("Resolve(env) error = %v", err)
	}
	if want := filepath.Join(home, "smee.toml"); string(got) != want {
		t.Errorf("Resolve(env) = %q, want %q", got, want)
	}
}

func TestResolve_LeavesTildeUserAlone(t *testing.T) {
	t.Parallel()

	r := Resolver{HomeDir: func() (string, error) {
		t.Error("home directory should not be looked up")
		return "", nil
	}}
	got, _, err := r.Resolve(PathInputs{Explicit: "~smee.toml"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if filepath.Base(string(got)) != "~smee.toml" {
		t.Errorf("Resolve() = %q", got)
	}
}

func TestResolve_RelativeBecomesAbsolute(t *testing.T) {
	t.Parallel()

	got, _, err := ResolvePath(PathInputs{Explicit: "smee.toml"})
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !filepath.IsAbs(string(got)) {
		t.Errorf("Resolve() = %q, want absolute path", got)
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	t.Run("home unknown", func(t *testing.T) {
		t.Parallel()
		r := Resolver{HomeDir: func() (string, error) { return "", errors.New("$HOME is not defined") }}
		_, src, err := r.Resolve(PathInputs{Env: "~/smee.toml"})
		var pe *PathError
		if !errors.As(err, &pe) || pe.Kind != KindHomeDir {
			t.Fatalf("Resolve() error = %v, want home dir PathError", err)
		}
		if src != SourceEnv {
			t.Errorf("Source = %q, want %q", src, SourceEnv)
		}
	})

	t.Run("missing parent directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nope", "smee.toml")
		_, _, err := ResolvePath(PathInputs{Explicit: path})
		var pe *PathError
		if !errors.As(err, &pe) || pe.Kind != KindMissingParent {
			t.Fatalf("Resolve() error = %v, want missing parent PathError", err)
		}
	})

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		_, _, err := ResolvePath(PathInputs{Explicit: filepath.Join(file, "smee.toml")})
		var pe *PathError
		if !errors.As(err, &pe) || pe.Kind != KindMissingParent {
			t.Fatalf("Resolve() error = %v, want missing parent PathError", err)
		}
	})

	t.Run("nothing given", func(t *testing.T) {
		t.Parallel()
		_, _, err := ResolvePath(PathInputs{})
		var pe *PathError
		if !errors.As(err, &pe) || pe.Kind != KindNoSource {
			t.Fatalf("Resolve() error = %v, want no source PathError", err)
		}
	})
}

func TestSuggestHook(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want HookName
	}{
		{"pre-commmit", PreCommit},
		{"pre-comit", PreCommit},
		{"PRE_PUSH", PrePush},
		{"pre-puush", PrePush},
		{"zzz", ""},
	}
	for _, tt := range tests {
		if got := SuggestHook(tt.in); got != tt.want {
			t.Errorf("SuggestHook(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseHookName(t *testing.T) {
	t.Parallel()

	for _, name := range AllHooks {
		got, ok := ParseHookName(name.String())
		if !ok || got != name {
			t.Errorf("ParseHookName(%q) = %q, %v", name, got, ok)
		}
	}
	if _, ok := ParseHookName("Pre-Commit"); ok {
		t.Error("ParseHookName should be case sensitive")
	}
}
