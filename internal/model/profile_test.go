package model

import "testing"

func strp(s string) *string { return &s }
func i64p(n int64) *int64   { return &n }

func TestTypeAmountsSkipsPartialSlots(t *testing.T) {
	// Slot 1 complete, slot 2 has a name but no amount, slot 3 absent,
	// slot 4 complete. Only the complete slots come back, in slot order.
	p := &PricingProfile{
		Type1:            strp("VIP"),
		Type1AmountCents: i64p(50000),
		Type2:            strp("Family"),
		Type4:            strp("Standard"),
		Type4AmountCents: i64p(10000),
	}

	got := p.TypeAmounts()
	want := []TypeAmount{
		{Type: "VIP", AmountCents: 50000},
		{Type: "Standard", AmountCents: 10000},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d pairs, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTypeAmountsEmptyProfile(t *testing.T) {
	p := &PricingProfile{AdminID: "A1", HallName: "Main Hall"}
	if got := p.TypeAmounts(); len(got) != 0 {
		t.Errorf("expected no pairs for empty profile, got %+v", got)
	}
}
