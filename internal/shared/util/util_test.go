package util

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestToFloat(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
		ok   bool
		err  bool
	}{
		{name: "nil", in: nil},
		{name: "float", in: 2.5, want: 2.5, ok: true},
		{name: "int", in: 3, want: 3, ok: true},
		{name: "number", in: json.Number("12"), want: 12, ok: true},
		{name: "numeric_string", in: " 7.5 ", want: 7.5, ok: true},
		{name: "blank_string", in: "  "},
		{name: "word", in: "lots", err: true},
		{name: "bool", in: true, err: true},
		{name: "inf_string", in: "inf", err: true},
		{name: "infinity_string", in: "-Infinity", err: true},
		{name: "nan_string", in: "NaN", err: true},
		{name: "nan_number", in: json.Number("NaN"), err: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := ToFloat(tc.in)
			if tc.err {
				if !errors.Is(err, ErrNotNumeric) {
					t.Fatalf("expected ErrNotNumeric, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.ok || got != tc.want {
				t.Fatalf("ToFloat(%v) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestRound(t *testing.T) {
	if got := Round(0.8+0.15-0.05, 2); got != 0.9 {
		t.Fatalf("expected 0.9, got %v", got)
	}
	if got := Round(0.866666, 2); got != 0.87 {
		t.Fatalf("expected 0.87, got %v", got)
	}
}

func TestISOTimestamp(t *testing.T) {
	ts := time.Date(2026, time.March, 4, 5, 6, 7, 123456000, time.Local)
	if got := ISOTimestamp(ts); got != "2026-03-04T05:06:07.123456" {
		t.Fatalf("unexpected timestamp: %s", got)
	}
}
