package byteweave_test

import (
	stderrors "errors"
	"testing"

	"github.com/byteweave/byteweave"
	"github.com/byteweave/byteweave/errors"
)

func TestStatusString(t *testing.T) {
	tests := []struct {
		status byteweave.Status
		want   string
	}{
		{byteweave.StatusOK, "ok"},
		{byteweave.StatusInvalidInput, "invalid_input"},
		{byteweave.StatusOutputTooSmall, "output_too_small"},
		{byteweave.Status(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestStatusIsValid(t *testing.T) {
	for s := byteweave.StatusOK; s <= byteweave.StatusOutputTooSmall; s++ {
		if !s.IsValid() {
			t.Errorf("Status(%d).IsValid() = false", s)
		}
	}
	if byteweave.Status(3).IsValid() {
		t.Error("Status(3).IsValid() = true")
	}
}

func TestResultOK(t *testing.T) {
	ok := byteweave.Result{Consumed: 3, Produced: 4, Status: byteweave.StatusOK}
	if !ok.OK() {
		t.Error("OK Result reported not ok")
	}
	bad := byteweave.Result{Status: byteweave.StatusInvalidInput}
	if bad.OK() {
		t.Error("failed Result reported ok")
	}
}

func TestResultErr(t *testing.T) {
	ok := byteweave.Result{Status: byteweave.StatusOK}
	if err := ok.Err(errors.PhaseEncode, "hex"); err != nil {
		t.Errorf("Err on OK Result = %v, want nil", err)
	}

	invalid := byteweave.Result{Status: byteweave.StatusInvalidInput}
	err := invalid.Err(errors.PhaseDecode, "base64")
	if !stderrors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("Err = %v, want ErrInvalidInput kind", err)
	}

	small := byteweave.Result{Consumed: 8, Produced: 2, Status: byteweave.StatusOutputTooSmall}
	err = small.Err(errors.PhaseEncode, "varint")
	if !stderrors.Is(err, errors.ErrOutputTooSmall) {
		t.Errorf("Err = %v, want ErrOutputTooSmall kind", err)
	}

	var structured *errors.Error
	if !stderrors.As(err, &structured) {
		t.Fatal("Err should unwrap to *errors.Error")
	}
	if structured.Codec != "varint" || structured.Phase != errors.PhaseEncode {
		t.Errorf("structured error = %+v", structured)
	}
}
