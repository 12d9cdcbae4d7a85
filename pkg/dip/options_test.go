package dip

import "testing"

func TestParseSide(t *testing.T) {
	tests := []struct {
		in      string
		want    Side
		wantErr bool
	}{
		{"top", Top, false},
		{"T", Top, false},
		{"bottom", Bottom, false},
		{" b ", Bottom, false},
		{"left", Top, true},
	}

	for _, tt := range tests {
		got, err := ParseSide(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSide(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseSide(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		wantErr bool
	}{
		{"north", North, false},
		{"E", East, false},
		{"South", South, false},
		{"w", West, false},
		{"up", North, true},
	}

	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParsePinDisplay(t *testing.T) {
	tests := []struct {
		in      string
		want    PinDisplay
		wantErr bool
	}{
		{"", PinsNone, false},
		{"none", PinsNone, false},
		{"pin", PinsGap1, false},
		{"pin2", PinsGap2, false},
		{"pin3", PinsNone, true},
	}

	for _, tt := range tests {
		got, err := ParsePinDisplay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePinDisplay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePinDisplay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseAltDisplay(t *testing.T) {
	tests := []struct {
		in      string
		want    AltDisplay
		wantErr bool
	}{
		{"none", AltNone, false},
		{"alt1", AltFirst, false},
		{"alt2", AltSecond, false},
		{"all", AltAll, false},
		{"alt", AltAll, false},
		{"alt3", AltNone, true},
	}

	for _, tt := range tests {
		got, err := ParseAltDisplay(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAltDisplay(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseAltDisplay(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEnumStringsRoundTrip(t *testing.T) {
	for _, s := range []Side{Top, Bottom} {
		if got, err := ParseSide(s.String()); err != nil || got != s {
			t.Errorf("ParseSide(%q) = %v, %v", s, got, err)
		}
	}
	for _, d := range []Direction{North, East, South, West} {
		if got, err := ParseDirection(d.String()); err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", d, got, err)
		}
	}
	for _, p := range []PinDisplay{PinsNone, PinsGap1, PinsGap2} {
		if got, err := ParsePinDisplay(p.String()); err != nil || got != p {
			t.Errorf("ParsePinDisplay(%q) = %v, %v", p, got, err)
		}
	}
	for _, a := range []AltDisplay{AltNone, AltFirst, AltSecond, AltAll} {
		if got, err := ParseAltDisplay(a.String()); err != nil || got != a {
			t.Errorf("ParseAltDisplay(%q) = %v, %v", a, got, err)
		}
	}
	if got := Direction(9).String(); got != "unknown(9)" {
		t.Errorf("Direction(9).String() = %q, want %q", got, "unknown(9)")
	}
}

func TestCycling(t *testing.T) {
	if got := West.Clockwise(); got != North {
		t.Errorf("West.Clockwise() = %v, want north", got)
	}
	if got := North.CounterClockwise(); got != West {
		t.Errorf("North.CounterClockwise() = %v, want west", got)
	}
	if got := Bottom.Flip(); got != Top {
		t.Errorf("Bottom.Flip() = %v, want top", got)
	}
	if got := PinsGap2.Next(); got != PinsNone {
		t.Errorf("PinsGap2.Next() = %v, want none", got)
	}
	if got := AltAll.Next(); got != AltNone {
		t.Errorf("AltAll.Next() = %v, want none", got)
	}
}

func TestAltColumns(t *testing.T) {
	tests := []struct {
		alt  AltDisplay
		want int
	}{
		{AltNone, 1},
		{AltFirst, 2},
		{AltSecond, 3},
		{AltAll, -1},
	}
	for _, tt := range tests {
		if got := tt.alt.columns(); got != tt.want {
			t.Errorf("%v.columns() = %d, want %d", tt.alt, got, tt.want)
		}
	}
}
