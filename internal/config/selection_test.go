package config

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
)

func TestParseStepSelection(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StepSelection
	}{
		{
			name: "single step",
			in:   "download",
			want: StepSelection{"download"},
		},
		{
			name: "several steps",
			in:   "download,preprocess,evaluate",
			want: StepSelection{"download", "preprocess", "evaluate"},
		},
		{
			name: "spaces around names",
			in:   " download , preprocess ",
			want: StepSelection{"download", "preprocess"},
		},
		{
			name: "empty string",
			in:   "",
			want: StepSelection{},
		},
		{
			name: "only commas",
			in:   ",,,",
			want: StepSelection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStepSelection(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("selection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStepSelection_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StepSelection
	}{
		{
			name: "list form",
			in:   "steps:\n  - download\n  - evaluate\n",
			want: StepSelection{"download", "evaluate"},
		},
		{
			name: "string form",
			in:   `steps: "download,evaluate"`,
			want: StepSelection{"download", "evaluate"},
		},
		{
			name: "empty string form",
			in:   `steps: ""`,
			want: StepSelection{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var doc struct {
				Steps StepSelection `yaml:"steps"`
			}
			if err := yaml.Unmarshal([]byte(tt.in), &doc); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if diff := cmp.Diff(tt.want, doc.Steps); diff != "" {
				t.Errorf("selection mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStepSelection_Contains(t *testing.T) {
	sel := StepSelection{"download", "evaluate"}

	if !sel.Contains("download") {
		t.Error("expected Contains(download) to be true")
	}
	if sel.Contains("preprocess") {
		t.Error("expected Contains(preprocess) to be false")
	}
}
