package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestOutput_Table(t *testing.T) {
	var buf, errBuf bytes.Buffer
	out := NewOutputTo(false, &buf, &errBuf)

	out.Print(
		[]string{"STEP", "STATUS"},
		[][]string{{"download", "SUCCEEDED"}, {"preprocess", "FAILED"}},
		nil,
	)

	got := buf.String()
	for _, want := range []string{"STEP", "download", "preprocess", "FAILED"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestOutput_JSONMode(t *testing.T) {
	var buf, errBuf bytes.Buffer
	out := NewOutputTo(true, &buf, &errBuf)

	out.Print([]string{"STEP"}, [][]string{{"download"}}, []string{"download", "evaluate"})

	var decoded []string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 || decoded[0] != "download" {
		t.Errorf("unexpected json payload: %v", decoded)
	}
}

func TestOutput_SuccessGoesToStderr(t *testing.T) {
	var buf, errBuf bytes.Buffer
	out := NewOutputTo(false, &buf, &errBuf)

	out.Success("done")

	if buf.Len() != 0 {
		t.Errorf("stdout must stay clean, got %q", buf.String())
	}
	if !strings.Contains(errBuf.String(), "done") {
		t.Errorf("expected message on stderr, got %q", errBuf.String())
	}
}
