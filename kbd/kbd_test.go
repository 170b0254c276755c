package kbd

import (
	"errors"
	"testing"
)

func TestParseLayout(t *testing.T) {
	if l, err := ParseLayout(" QWERTY "); err != nil || l != Qwerty {
		t.Fatalf("ParseLayout(QWERTY) = %v, %v", l, err)
	}
	if l, err := ParseLayout("azerty"); err != nil || l != Azerty {
		t.Fatalf("ParseLayout(azerty) = %v, %v", l, err)
	}
	if _, err := ParseLayout("dvorak"); !errors.Is(err, ErrUnknownLayout) {
		t.Fatalf("ParseLayout(dvorak) err = %v, want ErrUnknownLayout", err)
	}
}

func TestCurMap(t *testing.T) {
	tests := []struct {
		layout Layout
		mod    ModKey
		want   Map
	}{
		{Azerty, Base, MapAzerty},
		{Azerty, Shift, MapAzertyS},
		{Azerty, AltL, MapAzertyAltL},
		{Azerty, AltR, MapAzertyAltR},
		{Azerty, AltRS, MapAzertyAltRS},
		{Qwerty, Base, MapQwerty},
		{Qwerty, Shift, MapQwertyS},
		{Qwerty, AltL, MapQwertyAlt},
		{Qwerty, AltR, MapQwertyAlt},
		{Qwerty, AltRS, MapQwertyAlt},
	}
	for _, tt := range tests {
		s := State{Layout: tt.layout, ModKey: tt.mod}
		if got := s.CurMap(); got != tt.want {
			t.Fatalf("CurMap(%v, %v) = %d, want %d", tt.layout, tt.mod, got, tt.want)
		}
	}
}

func TestLookup(t *testing.T) {
	s := State{Layout: Qwerty}
	if r, ok := s.Lookup(19); !ok || r != C('q') {
		t.Fatalf("Lookup(19) = %v, %v, want C('q')", r, ok)
	}
	if r, _ := s.Lookup(38); r.Kind != Bksp {
		t.Fatalf("Lookup(38) = %v, want Bksp", r)
	}
	if _, ok := s.Lookup(MapSize); ok {
		t.Fatalf("Lookup(MapSize) ok = true")
	}
	if _, ok := s.Lookup(-1); ok {
		t.Fatalf("Lookup(-1) ok = true")
	}

	s = State{Layout: Azerty, ModKey: AltR}
	if r, _ := s.Lookup(21); r != C('€') {
		t.Fatalf("azerty altr Lookup(21) = %v, want C('€')", r)
	}
}

func TestEveryMapHasFixedKeys(t *testing.T) {
	for m := MapAzerty; m <= MapQwertyAlt; m++ {
		tbl := lut(m)
		if tbl[0].Kind != Up || tbl[2].Kind != Click || tbl[49].Kind != ModAltL || tbl[53].Kind != ModAltR {
			t.Fatalf("map %d: nav or alt keys out of place", m)
		}
		if tbl[51] != C(' ') {
			t.Fatalf("map %d: key 51 = %v, want space", m, tbl[51])
		}
	}
}

func TestModKeyDownAzerty(t *testing.T) {
	tests := []struct {
		from ModKey
		key  Result
		want ModKey
	}{
		{Base, altL, AltL},
		{AltL, altL, Base},
		{Shift, altL, AltL},
		{Base, altR, AltR},
		{Shift, altR, AltRS},
		{AltR, altR, Base},
		{AltRS, altR, Shift},
		{AltL, altR, AltR},
		{Base, shift, Shift},
		{Shift, shift, Base},
		{AltR, shift, AltRS},
		{AltRS, shift, AltR},
		{AltL, shift, AltL},
		{Base, C('a'), Base},
	}
	for _, tt := range tests {
		s := State{Layout: Azerty, ModKey: tt.from}
		s.ModKeyDown(tt.key)
		if s.ModKey != tt.want {
			t.Fatalf("azerty %v + %v = %v, want %v", tt.from, tt.key, s.ModKey, tt.want)
		}
	}
}

func TestModKeyDownQwerty(t *testing.T) {
	tests := []struct {
		from ModKey
		key  Result
		want ModKey
	}{
		{Base, altL, AltL},
		{Shift, altL, AltL},
		{AltL, altL, Base},
		{AltR, altL, Base},
		{Base, altR, AltR},
		{AltL, altR, Base},
		{Base, shift, Shift},
		{Shift, shift, Base},
		{AltL, shift, AltL},
	}
	for _, tt := range tests {
		s := State{Layout: Qwerty, ModKey: tt.from}
		s.ModKeyDown(tt.key)
		if s.ModKey != tt.want {
			t.Fatalf("qwerty %v + %v = %v, want %v", tt.from, tt.key, s.ModKey, tt.want)
		}
	}
}

func TestFind(t *testing.T) {
	s := State{Layout: Qwerty, ModKey: Shift}
	if i, ok := s.Find(C('H')); !ok || i != 34 {
		t.Fatalf("Find(H) = %d, %v, want 34", i, ok)
	}
	if _, ok := s.Find(C('é')); ok {
		t.Fatalf("Find(é) ok = true in qwerty shift")
	}
}

func TestResultString(t *testing.T) {
	if got := C('x').String(); got != `C('x')` {
		t.Fatalf("String() = %s", got)
	}
	if got := f3.String(); got != "F3" {
		t.Fatalf("String() = %s", got)
	}
	if !shift.IsModifier() || C('a').IsModifier() {
		t.Fatalf("IsModifier() mismatch")
	}
}

func TestPinIndex(t *testing.T) {
	tests := map[string]int{"P2": 0, "PC": 2, "P4": 5, "P13": 9, "P42": 38, "P55": 51, "P57": 53}
	for pin, want := range tests {
		if got, ok := PinIndex(pin); !ok || got != want {
			t.Fatalf("PinIndex(%s) = %d, %v, want %d", pin, got, ok, want)
		}
	}
	for _, pin := range []string{"", "P1", "P58", "p13", "P10"} {
		if _, ok := PinIndex(pin); ok {
			t.Fatalf("PinIndex(%q) ok = true", pin)
		}
	}
}

func TestParseScanCode(t *testing.T) {
	tests := []struct {
		sc    string
		index int
		press bool
	}{
		{"P13p", 9, true},
		{"P13r", 9, false},
		{"P2_p", 0, true},
		{"PC_r", 2, false},
		{"P57p", 53, true},
	}
	for _, tt := range tests {
		i, press, err := ParseScanCode(tt.sc)
		if err != nil || i != tt.index || press != tt.press {
			t.Fatalf("ParseScanCode(%q) = %d, %v, %v, want %d, %v", tt.sc, i, press, err, tt.index, tt.press)
		}
	}
	for _, sc := range []string{"", "P13", "P13px", "P13x", "P1_p", "Q13p", "P99p"} {
		if _, _, err := ParseScanCode(sc); !errors.Is(err, ErrBadScanCode) {
			t.Fatalf("ParseScanCode(%q) err = %v, want ErrBadScanCode", sc, err)
		}
	}
}
