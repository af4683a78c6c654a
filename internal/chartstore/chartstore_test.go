package chartstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gopanchang/jyotish/internal/astrotime"
	"github.com/gopanchang/jyotish/internal/chart"
	"github.com/gopanchang/jyotish/internal/zodiac"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "charts.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func computedChart(t *testing.T) (chart.Input, *chart.Chart) {
	t.Helper()
	in := chart.Input{
		Moment:    astrotime.Moment{Year: 1990, Month: 5, Day: 15, Hour: 6, Minute: 30, UTCOffset: 5.5},
		Latitude:  12.97,
		Longitude: 77.59,
	}
	c, err := chart.New(in, zodiac.Lahiri())
	if err != nil {
		t.Fatal(err)
	}
	return in, c
}

func TestSaveAndGet(t *testing.T) {
	s := openStore(t)
	in, c := computedChart(t)
	ctx := context.Background()

	if err := s.Save(ctx, "ravi", in, c); err != nil {
		t.Fatal(err)
	}

	sum, planets, err := s.Get(ctx, "ravi")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Moment != in.Moment {
		t.Errorf("moment = %+v, want %+v", sum.Moment, in.Moment)
	}
	if sum.JulianDay != c.JulianDay {
		t.Errorf("julian day = %v, want %v", sum.JulianDay, c.JulianDay)
	}
	if sum.AscSign != c.Ascendant.Sign.Index {
		t.Errorf("asc sign = %d, want %d", sum.AscSign, c.Ascendant.Sign.Index)
	}
	if len(planets) != 9 {
		t.Fatalf("got %d positions, want 9", len(planets))
	}
	for _, p := range planets {
		b := c.Body(p.Planet)
		if p.Longitude != b.Position.Longitude || p.House != b.House {
			t.Errorf("%s stored as %+v, chart has lon=%v house=%d",
				p.Planet, p, b.Position.Longitude, b.House)
		}
	}
}

func TestSave_Overwrites(t *testing.T) {
	s := openStore(t)
	in, c := computedChart(t)
	ctx := context.Background()

	if err := s.Save(ctx, "x", in, c); err != nil {
		t.Fatal(err)
	}
	in2 := in
	in2.Moment.Day = 16
	c2, err := chart.New(in2, zodiac.Lahiri())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(ctx, "x", in2, c2); err != nil {
		t.Fatal(err)
	}

	sum, planets, err := s.Get(ctx, "x")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Moment.Day != 16 {
		t.Errorf("day = %d, want overwritten 16", sum.Moment.Day)
	}
	if len(planets) != 9 {
		t.Errorf("got %d positions after overwrite, want 9", len(planets))
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("list has %d entries, want 1", len(list))
	}
}

func TestList_Ordering(t *testing.T) {
	s := openStore(t)
	in, c := computedChart(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		if err := s.Save(ctx, name, in, c); err != nil {
			t.Fatal(err)
		}
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("list has %d entries, want 3", len(list))
	}
}

func TestGet_NotFound(t *testing.T) {
	s := openStore(t)
	if _, _, err := s.Get(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	s := openStore(t)
	in, c := computedChart(t)
	ctx := context.Background()

	if err := s.Save(ctx, "gone", in, c); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "gone"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.Get(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err after delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "gone"); !errors.Is(err, ErrNotFound) {
		t.Errorf("double delete err = %v, want ErrNotFound", err)
	}
}
