package prof_test

import (
	"os"
	"path/filepath"
	"testing"

	"g5/internal/prof"
)

func TestSessionWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	paths := prof.Paths{
		CPU:   filepath.Join(dir, "cpu.out"),
		Mem:   filepath.Join(dir, "mem.out"),
		Trace: filepath.Join(dir, "trace.out"),
	}
	s, err := prof.Start(paths)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
	for _, p := range []string{paths.CPU, paths.Mem, paths.Trace} {
		st, err := os.Stat(p)
		if err != nil {
			t.Fatal(err)
		}
		if st.Size() == 0 {
			t.Errorf("%s is empty", filepath.Base(p))
		}
	}
}

func TestStartBadPath(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "missing", "cpu.out")
	if _, err := prof.Start(prof.Paths{CPU: bad}); err == nil {
		t.Fatal("expected error")
	}
	// the failed start must not leave a CPU profile running
	s, err := prof.Start(prof.Paths{CPU: filepath.Join(t.TempDir(), "cpu.out")})
	if err != nil {
		t.Fatal(err)
	}
	_ = s.Stop()
}

func TestNilSessionStop(t *testing.T) {
	var s *prof.Session
	if err := s.Stop(); err != nil {
		t.Fatal(err)
	}
	if (prof.Paths{}).Any() {
		t.Error("empty paths report Any")
	}
}
