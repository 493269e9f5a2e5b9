package alert

import "testing"

func TestIntensity_Rank(t *testing.T) {
	cases := []struct {
		label string
		want  int
	}{
		{"0", 0},
		{"1", 1},
		{"2", 2},
		{"3", 3},
		{"4", 4},
		{"5弱", 5},
		{"5強", 6},
		{"6弱", 7},
		{"6強", 8},
		{"7", 9},
	}
	for _, c := range cases {
		if got := Intensity(c.label).Rank(); got != c.want {
			t.Errorf("Rank(%q) = %d, want %d", c.label, got, c.want)
		}
	}
}

func TestIntensity_RankOrdering(t *testing.T) {
	// The scale must be strictly increasing in the published order,
	// 5強 above 5弱 and 6強 above 6弱 in particular.
	order := []string{"0", "1", "2", "3", "4", "5弱", "5強", "6弱", "6強", "7"}
	for i := 1; i < len(order); i++ {
		lo, hi := Intensity(order[i-1]), Intensity(order[i])
		if lo.Rank() >= hi.Rank() {
			t.Errorf("Rank(%q) = %d not below Rank(%q) = %d", lo, lo.Rank(), hi, hi.Rank())
		}
	}
}

func TestIntensity_RankUnknown(t *testing.T) {
	for _, label := range []string{"", "8", "5", "強", "5 弱", "abc"} {
		if got := Intensity(label).Rank(); got != RankUnknown {
			t.Errorf("Rank(%q) = %d, want RankUnknown", label, got)
		}
	}
}

func TestKnownIntensity(t *testing.T) {
	if !KnownIntensity("5弱") {
		t.Error("KnownIntensity(5弱) = false, want true")
	}
	if KnownIntensity("5") {
		t.Error("KnownIntensity(5) = true, want false")
	}
	if KnownIntensity("") {
		t.Error("KnownIntensity(\"\") = true, want false")
	}
}

func TestEpiIntensity_String(t *testing.T) {
	cases := []struct {
		in   EpiIntensity
		want string
	}{
		{7, "7"},
		{6.5, "6.5"},
		{0, "0"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("EpiIntensity(%v).String() = %q, want %q", float64(c.in), got, c.want)
		}
	}
}

func TestSource_String(t *testing.T) {
	cases := []struct {
		src  Source
		want string
	}{
		{SourceJMA, "jma"},
		{SourceCEA, "cea"},
		{SourceTest, "test"},
		{Source(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.src.String(); got != c.want {
			t.Errorf("Source(%d).String() = %q, want %q", int(c.src), got, c.want)
		}
	}
}
