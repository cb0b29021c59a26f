package tasks

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/fatih/color"
)

// Source builds the ordered task list for one launch. Tasks are opaque shell
// command strings; their order is significant and preserved.
type Source struct {
	// BareParams disables the existence check on template arguments.
	BareParams bool
	// StrictArgs turns a missing file argument into an error instead of a
	// silent skip.
	StrictArgs bool
	Verbose    bool
}

// NewSource creates a Source from the relevant toggles.
func NewSource(bareParams, strictArgs, verbose bool) *Source {
	return &Source{BareParams: bareParams, StrictArgs: strictArgs, Verbose: verbose}
}

// FromFile reads one task per non-empty line of path. Lines whose first
// non-blank character is '#' are treated as comments and filtered out.
func (s *Source) FromFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("command file not found: %s", path)
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		list = append(list, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read command file %s: %w", path, err)
	}
	return list, nil
}

// FromTemplate combines a command template with its trailing arguments, one
// task per argument, in argument order. Unless BareParams is set, an
// argument is expected to be an existing file; a missing one is skipped
// (StrictArgs makes it an error instead).
func (s *Source) FromTemplate(template string, args []string) ([]string, error) {
	list := make([]string, 0, len(args))
	for _, arg := range args {
		if !s.BareParams {
			if _, err := os.Stat(arg); err != nil {
				if s.StrictArgs {
					return nil, fmt.Errorf("argument is not an existing file: %s", arg)
				}
				if s.Verbose {
					color.Yellow("skipping missing file argument: %s", arg)
				}
				continue
			}
		}
		list = append(list, template+" "+arg)
	}
	return list, nil
}

// Replicate returns n copies of command, one per slot.
func (s *Source) Replicate(command string, n int) []string {
	list := make([]string, n)
	for i := range list {
		list[i] = command
	}
	return list
}

// Resolvable reports whether name resolves to an executable on the search
// path.
func Resolvable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// AnyRedirection reports whether at least one task contains a shell output
// redirection operator. Without one, concurrent task output interleaves on
// the launcher's combined stdout.
func AnyRedirection(list []string) bool {
	for _, task := range list {
		if strings.Contains(task, ">") {
			return true
		}
	}
	return false
}
