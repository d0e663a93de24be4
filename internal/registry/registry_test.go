package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blank/internal/platform"
)

type stubSubsystem struct {
	opts platform.Options
}

func (s *stubSubsystem) Init() error { return nil }
func (s *stubSubsystem) OpenWindow(int, int) (platform.Display, error) {
	return nil, errors.New("stub has no window")
}
func (s *stubSubsystem) Quit() {}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-b", "second", func(opts platform.Options) platform.Subsystem { return &stubSubsystem{opts: opts} })
	Register("test-a", "first", func(opts platform.Options) platform.Subsystem { return &stubSubsystem{opts: opts} })

	if !Exists("test-a") || !Exists("test-b") {
		t.Fatal("registered backends should exist")
	}

	sub, err := Create("test-a", platform.Options{TargetFPS: 30})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := sub.(*stubSubsystem).opts.TargetFPS; got != 30 {
		t.Errorf("factory should receive the options, TargetFPS = %f", got)
	}

	list := List()
	var names []string
	for _, info := range list {
		names = append(names, info.Name)
	}
	ia, ib := indexOf(names, "test-a"), indexOf(names, "test-b")
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() should be sorted by name, got %v", names)
	}
	if list[ia].Description != "first" {
		t.Errorf("description = %q, expected %q", list[ia].Description, "first")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist", platform.Options{})
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("Create() error = %v, expected ErrUnknownBackend", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "", func(platform.Options) platform.Subsystem { return &stubSubsystem{} })

	defer func() {
		if recover() == nil {
			t.Error("registering the same name twice should panic")
		}
	}()
	Register("test-dup", "", func(platform.Options) platform.Subsystem { return &stubSubsystem{} })
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
