// Package harness runs declarative Tinker script suites: YAML files
// describing scripts with their expected output or failure.
package harness

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tinkerlang/tinker/pkg/runtime"
)

// Case is one script with its expectation. Exactly one of Output or Error
// is meaningful: a case either succeeds with the given stdout or fails with
// an error containing the given substring at the given stage.
type Case struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Output string `yaml:"output,omitempty"` // expected stdout, verbatim
	Error  string `yaml:"error,omitempty"`  // expected error substring
	Stage  string `yaml:"stage,omitempty"`  // lex, parse, or eval; optional
}

// Suite is a named collection of cases.
type Suite struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// Load reads a suite from a YAML file.
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid suite %s: %w", path, err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite %s defines no cases", path)
	}
	return &s, nil
}

// Check runs one case with a fresh environment and returns a description of
// the first mismatch, or "" if the case passes.
func (c *Case) Check() string {
	var out bytes.Buffer
	_, err := runtime.Run(c.Source, &out)

	if c.Error != "" {
		if err == nil {
			return fmt.Sprintf("expected error containing %q, script succeeded", c.Error)
		}
		if !strings.Contains(err.Error(), c.Error) {
			return fmt.Sprintf("expected error containing %q, got %q", c.Error, err.Error())
		}
		if c.Stage != "" && runtime.Stage(err) != c.Stage {
			return fmt.Sprintf("expected a %s error, got a %s error: %v", c.Stage, runtime.Stage(err), err)
		}
		return ""
	}

	if err != nil {
		return fmt.Sprintf("unexpected error: %v", err)
	}
	if out.String() != c.Output {
		return fmt.Sprintf("output mismatch:\n  want: %q\n  got:  %q", c.Output, out.String())
	}
	return ""
}

// Run checks every case, reporting per-case results to w. It returns the
// pass and fail counts.
func (s *Suite) Run(w io.Writer) (passed, failed int) {
	for _, c := range s.Cases {
		if msg := c.Check(); msg != "" {
			failed++
			fmt.Fprintf(w, "FAIL %s: %s\n", c.Name, msg)
			continue
		}
		passed++
		fmt.Fprintf(w, "PASS %s\n", c.Name)
	}
	return passed, failed
}
