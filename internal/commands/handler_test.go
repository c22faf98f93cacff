package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct {
	Name string
}

func (testMessage) Type() string { return "admin.test.message" }

func (m testMessage) Validate() error {
	if m.Name == "" {
		return validation.Errors{
			"name": validation.NewError("admin.test.name_required", "name is required"),
		}
	}
	return nil
}

func TestHandlerExecutesFunction(t *testing.T) {
	executed := false
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		executed = true
		return nil
	})

	if err := handler.Execute(context.Background(), testMessage{Name: "ok"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !executed {
		t.Fatalf("wrapped function did not run")
	}
}

func TestHandlerRejectsInvalidMessage(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		t.Fatalf("function must not run for invalid messages")
		return nil
	})

	err := handler.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("error category = %v, want validation", err)
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	boom := errors.New("boom")
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		return boom
	})

	err := handler.Execute(context.Background(), testMessage{Name: "ok"})
	if !errors.Is(err, boom) {
		t.Fatalf("Execute() error = %v, want wrapped boom", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("error category = %v, want command", err)
	}
}

func TestHandlerHonorsTimeout(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	}, WithTimeout[testMessage](5*time.Millisecond))

	err := handler.Execute(context.Background(), testMessage{Name: "ok"})
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Execute() error = %v, want deadline exceeded", err)
	}
}

func TestHandlerNilContext(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, msg testMessage) error {
		if ctx == nil {
			t.Fatalf("context not defaulted")
		}
		return nil
	})

	//nolint:staticcheck // exercising the nil-context fallback on purpose
	if err := handler.Execute(nil, testMessage{Name: "ok"}); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
}
