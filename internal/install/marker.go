package install

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/git-smee/git-smee/internal/config"
)

// Marker identifies a hook script as written by git-smee.
const Marker = "# Managed by git-smee. Do not edit: \"git smee install\" overwrites this file."

// Binary is the program a wrapper invokes. It is looked up in PATH when git
// runs the hook.
const Binary = "git-smee"

// Ownership tells who a file at a hook location belongs to.
type Ownership int

const (
	// Absent means no file exists at the hook location.
	Absent Ownership = iota
	// Managed means the file carries Marker.
	Managed
	// Foreign means the file exists but was not written by git-smee.
	Foreign
)

func (o Ownership) String() string {
	switch o {
	case Absent:
		return "absent"
	case Managed:
		return "managed"
	default:
		return "foreign"
	}
}

// Classify reports whether content was written by git-smee. Only a line that
// is exactly Marker counts; a script that merely mentions git-smee does not.
func Classify(content []byte) Ownership {
	sc := bufio.NewScanner(bytes.NewReader(content))
	for sc.Scan() {
		if strings.TrimRight(sc.Text(), "\r") == Marker {
			return Managed
		}
	}
	return Foreign
}

// Script returns the wrapper for hook. The configuration path is embedded
// single-quoted with forward slashes, which sh accepts on every platform git
// runs hooks on.
func Script(path config.ResolvedPath, hook config.HookName) []byte {
	var b bytes.Buffer
	b.WriteString("#!/usr/bin/env sh\n")
	b.WriteString(Marker + "\n")
	fmt.Fprintf(&b, "# hook: %s\n", hook)
	fmt.Fprintf(&b, "exec %s run --config %s %s -- \"$@\"\n",
		Binary, shellQuote(filepath.ToSlash(string(path))), hook)
	return b.Bytes()
}

// shellQuote escapes a string for safe use in shell commands.
// 'it's' becomes 'it'\''s'.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}
