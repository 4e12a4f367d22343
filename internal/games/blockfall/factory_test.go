package blockfall

import (
	"errors"
	"testing"
)

func TestFactoryRanges(t *testing.T) {
	f, err := NewFactory(1, DefaultWeights())
	if err != nil {
		t.Fatalf("NewFactory: %v", err)
	}

	tests := []struct {
		draw int
		want Kind
	}{
		{0, KindBlock},
		{39, KindBlock},
		{40, KindBar},
		{115, KindBar},
		{116, KindTromino},
		{215, KindTromino},
		{216, KindTee},
		{235, KindTee},
		{236, KindSkew},
		{255, KindSkew},
	}

	for _, tt := range tests {
		if got := f.kindFor(tt.draw); got != tt.want {
			t.Errorf("kindFor(%d) = %v, want %v", tt.draw, got, tt.want)
		}
	}
}

func TestFactoryDeterminism(t *testing.T) {
	f1, _ := NewFactory(7, DefaultWeights())
	f2, _ := NewFactory(7, DefaultWeights())

	for i := 0; i < 100; i++ {
		a, b := f1.Next(), f2.Next()
		if a != b {
			t.Fatalf("draw %d differs: %v vs %v", i, a, b)
		}
	}
}

func TestFactoryReachesEveryKind(t *testing.T) {
	f, _ := NewFactory(3, DefaultWeights())

	seen := make(map[Kind]int)
	for i := 0; i < 10*DrawRange; i++ {
		seen[f.Next()]++
	}
	for _, k := range Kinds() {
		if seen[k] == 0 {
			t.Errorf("%v never drawn", k)
		}
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}

	missing := DefaultWeights()
	delete(missing, KindTee)
	missing[KindBlock] += 20

	zero := DefaultWeights()
	zero[KindSkew] = 0
	zero[KindBlock] += 20

	short := DefaultWeights()
	short[KindBar]--

	unknown := DefaultWeights()
	unknown[Kind(9)] = 1

	tests := []struct {
		name string
		w    Weights
	}{
		{"missing kind", missing},
		{"zero share", zero},
		{"wrong total", short},
		{"unknown kind", unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.w.Validate(); err == nil {
				t.Error("expected error")
			}
			if _, err := NewFactory(1, tt.w); err == nil {
				t.Error("NewFactory should reject invalid weights")
			}
		})
	}

	if err := unknown.Validate(); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("expected ErrUnknownKind, got %v", err)
	}
}

func TestWeightsString(t *testing.T) {
	want := "block[0,40) bar[40,116) tromino[116,216) tee[216,236) skew[236,256)"
	if got := DefaultWeights().String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWeightsRejectOversizedShares(t *testing.T) {
	// Four shares of a quarter of the int range wrap the sum back to DrawRange.
	huge := int(^uint(0)>>2) + 1
	w := Weights{
		KindBlock:   huge,
		KindBar:     huge,
		KindTromino: huge,
		KindTee:     huge,
		KindSkew:    DrawRange,
	}
	if err := w.Validate(); err == nil {
		t.Fatal("expected error for shares above the draw range")
	}
	if _, err := NewFactory(1, w); err == nil {
		t.Error("NewFactory should reject oversized shares")
	}
}
