package curve

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Script is a curve computed by a tengo program. The program reads the
// global `t` and must assign the global `alpha`.
type Script struct {
	name string

	mu       sync.Mutex
	compiled *tengo.Compiled
}

// CompileScript compiles src once; Eval reruns the compiled program.
func CompileScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))
	if err := script.Add("t", 0.0); err != nil {
		return nil, fmt.Errorf("curve: script %s: %w", name, err)
	}
	if err := script.Add("alpha", 0.0); err != nil {
		return nil, fmt.Errorf("curve: script %s: %w", name, err)
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("curve: compile %s: %w", name, err)
	}

	s := &Script{name: name, compiled: compiled}
	// run once so a script that fails at runtime is rejected at load time
	if _, err := s.eval(0); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Script) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Eval returns 0 when the script fails; errors were surfaced at compile time.
func (s *Script) Eval(t float64) float64 {
	v, err := s.eval(t)
	if err != nil {
		return 0
	}
	return v
}

func (s *Script) eval(t float64) (float64, error) {
	if s == nil || s.compiled == nil {
		return 0, fmt.Errorf("curve: nil script")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.compiled.Set("t", t); err != nil {
		return 0, fmt.Errorf("curve: script %s: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("curve: run %s: %w", s.name, err)
	}
	return s.compiled.Get("alpha").Float(), nil
}
