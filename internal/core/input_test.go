package core

import "testing"

func TestKeyMapLookup(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		key      rune
		expected Action
	}{
		{'a', ActionLeft},
		{'d', ActionRight},
		{'q', ActionQuit},
		{0x03, ActionQuit},
		{'w', ActionNone},
		{'A', ActionNone},
		{' ', ActionNone},
	}

	for _, tc := range tests {
		if got := km.Lookup(tc.key); got != tc.expected {
			t.Errorf("Lookup(%q) = %v, expected %v", tc.key, got, tc.expected)
		}
	}
}

func TestKeyMapValidate(t *testing.T) {
	if err := DefaultKeyMap().Validate(); err != nil {
		t.Errorf("default key map should be valid: %v", err)
	}

	dup := KeyMap{Left: 'a', Right: 'a', Quit: 'q'}
	if err := dup.Validate(); err == nil {
		t.Error("expected error for colliding bindings")
	}

	unset := KeyMap{Left: 'a', Right: 'd'}
	if err := unset.Validate(); err == nil {
		t.Error("expected error for unbound quit key")
	}
}
