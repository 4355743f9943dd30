package models

import (
	"math"
	"testing"
)

func TestLocationValid(t *testing.T) {
	tests := []struct {
		loc  Location
		want bool
	}{
		{Location{Lat: 40.7128, Lon: -74.0060}, true},
		{Location{}, false},
		{Location{Lat: 91, Lon: 0}, false},
		{Location{Lat: 10, Lon: 181}, false},
		{Location{Lat: math.NaN(), Lon: 1}, false},
		{Location{Lat: 0, Lon: 1}, true},
	}
	for _, tt := range tests {
		if got := tt.loc.Valid(); got != tt.want {
			t.Fatalf("Valid(%v) got=%v want=%v", tt.loc, got, tt.want)
		}
	}

	var r *Restaurant
	if r.Valid() {
		t.Fatalf("nil restaurant reported valid")
	}
	if (&Restaurant{Location: Location{Lat: 1, Lon: 1}}).Valid() {
		t.Fatalf("unnamed restaurant reported valid")
	}
}

func TestLocationScan(t *testing.T) {
	var l Location
	if err := l.Scan("POINT(-74.006 40.7128)"); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if l.Lon != -74.006 || l.Lat != 40.7128 {
		t.Fatalf("scanned got=%v", l)
	}
	if err := l.Scan([]byte("POINT(1.5 2.5)")); err != nil || l.Lon != 1.5 || l.Lat != 2.5 {
		t.Fatalf("scan bytes got=%v err=%v", l, err)
	}
	if err := l.Scan(42); err == nil {
		t.Fatalf("Scan(int) got nil error")
	}
}
