package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "wrapped cause",
			err:  Wrap(ConnectionFailed, "pinging database", cause),
			want: "connection_failed: pinging database: dial tcp: connection refused",
		},
		{
			name: "no cause",
			err:  New(ConfigInvalid, "database URL is empty"),
			want: "config_invalid: database URL is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnwrapPreservesChain(t *testing.T) {
	cause := stderrors.New("boom")
	err := Wrap(SchemaFailed, "creating table users", cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is lost the wrapped cause")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	var e *E
	if !stderrors.As(wrapped, &e) {
		t.Fatal("errors.As did not find *E through an outer wrap")
	}
	if e.Kind != SchemaFailed {
		t.Errorf("Kind = %q, want %q", e.Kind, SchemaFailed)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"direct", New(QueryFailed, "bad sql"), QueryFailed},
		{"nested", fmt.Errorf("outer: %w", Wrap(ConfigInvalid, "parse", stderrors.New("x"))), ConfigInvalid},
		{"plain error", stderrors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf = %q, want %q", got, tt.want)
			}
		})
	}
}
