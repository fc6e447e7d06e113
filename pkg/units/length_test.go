package units

import "testing"

func TestConstructors(t *testing.T) {
	if got := FromInches(1); got != Inch {
		t.Errorf("FromInches(1) = %v, want %v", got, Inch)
	}
	if got := FromInches(0.5).Points(); got != 36 {
		t.Errorf("FromInches(0.5).Points() = %v, want 36", got)
	}
	if got := FromPoints(144).Inches(); got != 2 {
		t.Errorf("FromPoints(144).Inches() = %v, want 2", got)
	}
}

func TestArithmetic(t *testing.T) {
	spacing := Inch.Div(2)
	if got := spacing.Mul(12); got != FromInches(6) {
		t.Errorf("12 half inches = %v, want 6in", got)
	}
	if got := FromPoints(1).Half(); got != 0.5 {
		t.Errorf("Half() = %v, want 0.5", got)
	}
	if got := Inch.Sub(Point); got != 71 {
		t.Errorf("1in - 1pt = %v, want 71", got)
	}
	if got := FromInches(3).Ratio(Inch); got != 3 {
		t.Errorf("Ratio() = %v, want 3", got)
	}
	if !FromPoints(1).ApproxEqual(FromPoints(1.0000001), 1e-6) {
		t.Error("ApproxEqual should accept tiny differences")
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in      string
		want    Length
		wantErr bool
	}{
		{in: "3pt", want: 3},
		{in: "0.5in", want: 36},
		{in: " 2 IN ", want: 144},
		{in: "6", want: 6},
		{in: "abc", wantErr: true},
		{in: "", wantErr: true},
		{in: "NaNpt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLength(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLength(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLength(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	text, err := FromPoints(2.5).MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != "2.5pt" {
		t.Errorf("MarshalText() = %q, want 2.5pt", text)
	}

	var l Length
	if err := l.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if l != 2.5 {
		t.Errorf("UnmarshalText() = %v, want 2.5", l)
	}
}
