package schema_test

import (
	"errors"
	"testing"

	"github.com/ivanyeors/solar-design-system/schema"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		data string
		want schema.Format
	}{
		{
			name: "token studio",
			data: `{"color": {"a": {"value": "#fff", "type": "color"}}}`,
			want: schema.TokenStudio,
		},
		{
			name: "dtcg",
			data: `{"color": {"a": {"$value": "#fff", "$type": "color"}}}`,
			want: schema.DTCG,
		},
		{
			name: "dtcg wins over studio markers",
			data: `{"a": {"$value": "#fff"}, "b": {"value": "x", "type": "other"}}`,
			want: schema.DTCG,
		},
		{
			name: "yaml token studio",
			data: "color:\n  a:\n    value: \"#fff\"\n    type: color\n",
			want: schema.TokenStudio,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schema.Detect([]byte(tc.data))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Detect = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDetect_UnknownFormat(t *testing.T) {
	_, err := schema.Detect([]byte(`{"just": "data"}`))
	if !errors.Is(err, schema.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestFormatString(t *testing.T) {
	if schema.TokenStudio.String() != "token-studio" {
		t.Errorf("unexpected name %q", schema.TokenStudio)
	}
	if schema.Unknown.String() != "unknown" {
		t.Errorf("unexpected name %q", schema.Unknown)
	}
}
