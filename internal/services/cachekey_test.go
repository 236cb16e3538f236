package services

import (
	"errors"
	"testing"
	"trip-optimizer-service/internal/domain"
)

func TestDeriveCacheKeyRoundsToFourDecimals(t *testing.T) {
	a := domain.Coordinate{Lat: 32.08531, Lng: 34.78176}
	b := domain.Coordinate{Lat: 32.08534, Lng: 34.78183}
	dest := domain.Coordinate{Lat: 31.7683, Lng: 35.2137}

	keyA, err := DeriveCacheKey(a, dest, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keyB, err := DeriveCacheKey(b, dest, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if keyA != keyB {
		t.Fatalf("keys differ within rounding precision: %q vs %q", keyA, keyB)
	}
	if keyA != "32.0853,34.7818|31.7683,35.2137" {
		t.Fatalf("unexpected key: %q", keyA)
	}
}

func TestDeriveCacheKeyPreferenceOrderIndependence(t *testing.T) {
	origin := domain.Coordinate{Lat: 1, Lng: 2}
	dest := domain.Coordinate{Lat: 3, Lng: 4}

	prefs := domain.PreferenceSet{"pace": "relaxed", "diet": "vegan"}
	same := domain.PreferenceSet{"diet": "vegan", "pace": "relaxed"}

	keyA, err := DeriveCacheKey(origin, dest, prefs)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keyB, err := DeriveCacheKey(origin, dest, same)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keyA != keyB {
		t.Fatalf("semantically identical preference sets produced %q and %q", keyA, keyB)
	}

	keyC, err := DeriveCacheKey(origin, dest, domain.PreferenceSet{"diet": "halal"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keyC == keyA {
		t.Fatalf("different preferences collided on key %q", keyC)
	}
}

func TestDeriveCacheKeyRejectsMalformedCoordinates(t *testing.T) {
	good := domain.Coordinate{Lat: 10, Lng: 20}

	cases := []struct {
		name string
		bad  domain.Coordinate
	}{
		{"latitude too high", domain.Coordinate{Lat: 91, Lng: 0}},
		{"latitude too low", domain.Coordinate{Lat: -90.5, Lng: 0}},
		{"longitude too high", domain.Coordinate{Lat: 0, Lng: 180.1}},
		{"longitude too low", domain.Coordinate{Lat: 0, Lng: -181}},
	}

	for _, tc := range cases {
		if _, err := DeriveCacheKey(tc.bad, good, nil); !errors.Is(err, domain.ErrInvalidCoordinate) {
			t.Errorf("%s: err = %v, want ErrInvalidCoordinate", tc.name, err)
		}
		if _, err := DeriveCacheKey(good, tc.bad, nil); !errors.Is(err, domain.ErrInvalidCoordinate) {
			t.Errorf("%s (destination): err = %v, want ErrInvalidCoordinate", tc.name, err)
		}
	}
}

func TestDeriveCacheKeyNormalizesNegativeZero(t *testing.T) {
	keyA, err := DeriveCacheKey(domain.Coordinate{Lat: -0.00004, Lng: 0}, domain.Coordinate{Lat: 1, Lng: 1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	keyB, err := DeriveCacheKey(domain.Coordinate{Lat: 0.00004, Lng: 0}, domain.Coordinate{Lat: 1, Lng: 1}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if keyA != keyB {
		t.Fatalf("negative zero not normalized: %q vs %q", keyA, keyB)
	}
}
