package utils

import (
	"context"
	"errors"
	"testing"
)

func TestExecuteRunsAllFunctions(t *testing.T) {
	e := NewConcurrentExecutor(2)
	errFail := errors.New("fail")

	results := e.Execute(context.Background(),
		func() error { return nil },
		func() error { return errFail },
		func() error { return nil },
	)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if results[0] != nil || results[2] != nil {
		t.Errorf("results = %v, want nil at 0 and 2", results)
	}
	if !errors.Is(results[1], errFail) {
		t.Errorf("results[1] = %v, want errFail", results[1])
	}
}

func TestExecuteRecoversPanics(t *testing.T) {
	e := NewConcurrentExecutor(1)

	results := e.Execute(context.Background(), func() error {
		panic("boom")
	})

	var pe *PanicError
	if !errors.As(results[0], &pe) {
		t.Fatalf("results[0] = %v, want *PanicError", results[0])
	}
}

func TestExecuteEmpty(t *testing.T) {
	e := NewConcurrentExecutor(0)
	if results := e.Execute(context.Background()); results != nil {
		t.Errorf("Execute() with no functions = %v, want nil", results)
	}
}
