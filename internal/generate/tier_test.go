package generate

import (
	"errors"
	"testing"
)

func TestTierTable(t *testing.T) {
	cases := []struct {
		tier Tier
		want TierConfig
	}{
		{Easy, TierConfig{Rows: 15, Cols: 15, ItemCount: 4, Growth: 0, TimeBuffer: 3.0}},
		{Medium, TierConfig{Rows: 21, Cols: 21, ItemCount: 8, Growth: 1, TimeBuffer: 6.0, Loops: true}},
		{Hard, TierConfig{Rows: 31, Cols: 31, ItemCount: 15, Growth: 2, TimeBuffer: 12.0, Loops: true}},
	}
	for _, c := range cases {
		if got := c.tier.Config(); got != c.want {
			t.Errorf("%v.Config() = %+v, want %+v", c.tier, got, c.want)
		}
	}
}

func TestTierConfigIsACopy(t *testing.T) {
	c := Hard.Config()
	c.Rows = 3
	if Hard.Config().Rows != 31 {
		t.Error("mutating a returned config changed the table")
	}
}

func TestParseTier(t *testing.T) {
	cases := []struct {
		in   string
		want Tier
	}{
		{"easy", Easy},
		{"EASY", Easy},
		{"Medium", Medium},
		{"hArD", Hard},
	}
	for _, c := range cases {
		got, err := ParseTier(c.in)
		if err != nil || got != c.want {
			t.Errorf("ParseTier(%q) = %v, %v; want %v", c.in, got, err, c.want)
		}
	}
	if _, err := ParseTier("nightmare"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("ParseTier(nightmare) error = %v, want ErrUnknownTier", err)
	}
}

func TestTierString(t *testing.T) {
	if Medium.String() != "MEDIUM" {
		t.Errorf("Medium.String() = %q", Medium.String())
	}
	if got := Tier(9).String(); got != "Tier(9)" {
		t.Errorf("Tier(9).String() = %q", got)
	}
}

func TestDimensionsGrowth(t *testing.T) {
	cases := []struct {
		tier         Tier
		level        int
		wantR, wantC int
	}{
		{Easy, 5, 15, 15},
		{Medium, 0, 21, 21},
		{Medium, 3, 24, 24},
		{Hard, 2, 35, 35},
		{Hard, -1, 31, 31},
	}
	for _, c := range cases {
		r, col := c.tier.Config().Dimensions(c.level)
		if r != c.wantR || col != c.wantC {
			t.Errorf("%v.Dimensions(%d) = %dx%d, want %dx%d", c.tier, c.level, r, col, c.wantR, c.wantC)
		}
	}
}
