package main

import (
	"reflect"
	"testing"
)

func TestRewriteBareValueArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"datefield"},
			want: []string{"datefield"},
		},
		{
			name: "bare date first token",
			in:   []string{"datefield", "2017-09-30"},
			want: []string{"datefield", "--value", "2017-09-30"},
		},
		{
			name: "bare range after value flag",
			in:   []string{"datefield", "--locale", "de", "2017-01-01..2017-12-31"},
			want: []string{"datefield", "--locale", "de", "--value", "2017-01-01..2017-12-31"},
		},
		{
			name: "flag=value form",
			in:   []string{"datefield", "--max-detail=year", "2017"},
			want: []string{"datefield", "--max-detail=year", "--value", "2017"},
		},
		{
			name: "bool flag does not consume the date",
			in:   []string{"datefield", "--pretty", "2017-09"},
			want: []string{"datefield", "--pretty", "--value", "2017-09"},
		},
		{
			name: "subcommand untouched",
			in:   []string{"datefield", "compose", "9", "20", "2017"},
			want: []string{"datefield", "compose", "9", "20", "2017"},
		},
		{
			name: "date after double dash",
			in:   []string{"datefield", "--", "2017-09-30"},
			want: []string{"datefield", "--value", "2017-09-30"},
		},
		{
			name: "value of a value flag is not rewritten",
			in:   []string{"datefield", "--min", "2017-01-01"},
			want: []string{"datefield", "--min", "2017-01-01"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteBareValueArgs(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("rewriteBareValueArgs(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
