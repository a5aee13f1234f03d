package errors

import (
	stderrors "errors"
	"net/http"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ErrCodeInvalidEngine, "unknown engine: %s", "warp")
	if got := plain.Error(); got != "INVALID_ENGINE: unknown engine: warp" {
		t.Errorf("Error() = %q", got)
	}

	cause := stderrors.New("exit status 1")
	wrapped := Wrap(ErrCodeRenderFailed, cause, "render svg")
	if got := wrapped.Error(); got != "RENDER_FAILED: render svg: exit status 1" {
		t.Errorf("Error() = %q", got)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("wrapped error must match its cause via errors.Is")
	}
}

func TestCodeMatching(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "unknown format")

	if !Is(err, ErrCodeInvalidFormat) {
		t.Error("Is should match the code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	if got := GetCode(err); got != ErrCodeInvalidFormat {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := Wrap(ErrCodeRenderFailed, stderrors.New("boom"), "render failed")
	if got := UserMessage(err); got != "render failed" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"InvalidEngine", New(ErrCodeInvalidEngine, "x"), http.StatusBadRequest},
		{"InvalidFormat", New(ErrCodeInvalidFormat, "x"), http.StatusBadRequest},
		{"InvalidInput", New(ErrCodeInvalidInput, "x"), http.StatusBadRequest},
		{"NotFound", New(ErrCodeFileNotFound, "x"), http.StatusNotFound},
		{"Unsupported", New(ErrCodeUnsupported, "x"), http.StatusUnprocessableEntity},
		{"RenderFailed", New(ErrCodeRenderFailed, "x"), http.StatusInternalServerError},
		{"Plain", stderrors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.want {
				t.Errorf("HTTPStatus = %d, want %d", got, tt.want)
			}
		})
	}
}
