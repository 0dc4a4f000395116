package cargo

import (
	"errors"
	"reflect"
	"testing"

	"github.com/talgya/tradegoods/internal/entropy"
	"github.com/talgya/tradegoods/internal/goods"
)

func TestIsAvailable(t *testing.T) {
	cases := []struct {
		roll, size, wealth int
		want               bool
	}{
		{1, 0, 0, false},
		{10, 1, 0, true},
		{11, 1, 0, false},
		{50, 2, 3, true},
		{51, 2, 3, false},
		{100, 5, 5, true},
		{100, 9, 9, true},
	}
	for _, c := range cases {
		if got := IsAvailable(c.roll, c.size, c.wealth); got != c.want {
			t.Fatalf("IsAvailable(%d, %d, %d) = %v, want %v", c.roll, c.size, c.wealth, got, c.want)
		}
	}
}

func TestIsAvailableMonotonic(t *testing.T) {
	for sum := 0; sum <= 12; sum++ {
		for roll := 2; roll <= 100; roll++ {
			if IsAvailable(roll, sum, 0) && !IsAvailable(roll-1, sum, 0) {
				t.Fatalf("not non-increasing in roll at roll=%d sum=%d", roll, sum)
			}
		}
	}
	for roll := 1; roll <= 100; roll++ {
		for sum := 1; sum <= 12; sum++ {
			if IsAvailable(roll, sum-1, 0) && !IsAvailable(roll, sum, 0) {
				t.Fatalf("not non-decreasing in size+wealth at roll=%d sum=%d", roll, sum)
			}
			if IsAvailable(roll, 0, sum) != IsAvailable(roll, sum, 0) {
				t.Fatalf("size and wealth must count the same at roll=%d sum=%d", roll, sum)
			}
		}
	}
}

func TestCheckAvailabilityTradeCenterUsesEitherRoll(t *testing.T) {
	loc := Location{Size: 4, Wealth: 5, TradeCenter: true}

	log := entropy.NewLog()
	ok, rolls, err := CheckAvailability(loc, entropy.NewSequence(95, 40), log)
	if err != nil {
		t.Fatalf("CheckAvailability: %v", err)
	}
	if !ok || !reflect.DeepEqual(rolls, []int{95, 40}) {
		t.Fatalf("got %v %v, want true [95 40]", ok, rolls)
	}
	rec, found := log.Find(entropy.PurposeAvailability, "")
	if !found || !reflect.DeepEqual(rec.Values, []int{95, 40}) {
		t.Fatalf("availability record = %+v", rec)
	}

	ok, _, _ = CheckAvailability(loc, entropy.NewSequence(40, 95), nil)
	if !ok {
		t.Fatalf("first roll passing should be enough")
	}

	ok, _, _ = CheckAvailability(loc, entropy.NewSequence(95, 91), nil)
	if ok {
		t.Fatalf("both rolls over 90 should fail")
	}

	full := Location{Size: 5, Wealth: 5, TradeCenter: true}
	ok, _, _ = CheckAvailability(full, entropy.NewSequence(100, 100), nil)
	if !ok {
		t.Fatalf("threshold 100 should accept a roll of 100")
	}
}

func TestCheckAvailabilitySingleRoll(t *testing.T) {
	loc := Location{Size: 4, Wealth: 5}
	seq := entropy.NewSequence(95, 10)
	ok, rolls, err := CheckAvailability(loc, seq, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok || len(rolls) != 1 || seq.Used() != 1 {
		t.Fatalf("got %v %v used=%d, want false [95] used=1", ok, rolls, seq.Used())
	}
}

func TestCheckAvailabilityRejectsNegative(t *testing.T) {
	for _, loc := range []Location{{Size: -1}, {Wealth: -2}} {
		if _, _, err := CheckAvailability(loc, entropy.NewSequence(1), nil); !errors.Is(err, goods.ErrInvalidInput) {
			t.Fatalf("CheckAvailability(%+v) err = %v", loc, err)
		}
	}
}

func TestRoundUpToNearest10(t *testing.T) {
	cases := map[int]int{0: 0, 1: 10, 9: 10, 10: 10, 11: 20, 86: 90, 100: 100}
	for in, want := range cases {
		if got := RoundUpToNearest10(in); got != want {
			t.Fatalf("RoundUpToNearest10(%d) = %d, want %d", in, got, want)
		}
	}
	for x := 0; x <= 2000; x++ {
		once := RoundUpToNearest10(x)
		if RoundUpToNearest10(once) != once {
			t.Fatalf("not idempotent at %d", x)
		}
		if once%10 != 0 || once < x {
			t.Fatalf("RoundUpToNearest10(%d) = %d", x, once)
		}
	}
}

func TestDigitReverse(t *testing.T) {
	cases := map[int]int{34: 43, 30: 3, 100: 1, 7: 7, 91: 19, 55: 55}
	for in, want := range cases {
		if got := DigitReverse(in); got != want {
			t.Fatalf("DigitReverse(%d) = %d, want %d", in, got, want)
		}
	}
	for n := 1; n <= 1000; n++ {
		if n%10 == 0 {
			continue
		}
		if got := DigitReverse(DigitReverse(n)); got != n {
			t.Fatalf("DigitReverse twice on %d = %d", n, got)
		}
	}
}

func TestSize(t *testing.T) {
	cases := []struct {
		roll int
		loc  Location
		want int
	}{
		{34, Location{Size: 1, Wealth: 1, TradeCenter: true}, 90},
		{34, Location{Size: 1, Wealth: 1}, 70},
		{30, Location{Size: 1, Wealth: 1, TradeCenter: true}, 60},
		{100, Location{Size: 1, Wealth: 1, TradeCenter: true}, 200},
		{50, Location{Size: 1}, 50},
		{7, Location{Size: 3, Wealth: 4}, 50},
	}
	for _, c := range cases {
		if got := Size(c.roll, c.loc); got != c.want {
			t.Fatalf("Size(%d, %+v) = %d, want %d", c.roll, c.loc, got, c.want)
		}
	}
	if got := EffectiveSizeRoll(34, true); got != 43 {
		t.Fatalf("EffectiveSizeRoll(34, true) = %d, want 43", got)
	}
	if got := EffectiveSizeRoll(34, false); got != 34 {
		t.Fatalf("EffectiveSizeRoll(34, false) = %d, want 34", got)
	}
}

func TestGenerateRandom(t *testing.T) {
	g := NewGenerator(nil)
	offers, log, err := g.Generate(Location{Size: 1}, goods.SeasonSpring, entropy.NewSequence(5, 50), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("offers = %d, want 1", len(offers))
	}
	o := offers[0]
	if o.Product != "fish" || o.Size != 50 || o.BasePrice.Value.String() != "0.5" || o.Special() {
		t.Fatalf("offer = %+v", o)
	}
	if r, ok := log.Find(entropy.PurposeProduct, "fish"); !ok || r.Values[0] != 5 {
		t.Fatalf("product record = %+v, %v", r, ok)
	}
	if r, ok := log.Find(entropy.PurposeSize, "fish"); !ok || r.Values[0] != 50 {
		t.Fatalf("size record = %+v, %v", r, ok)
	}
}

func TestGenerateWithNilLog(t *testing.T) {
	g := NewGenerator(nil)
	loc := Location{Size: 1, Wealth: 1, TradeCenter: true}
	offers, err := g.GenerateWithLog(loc, goods.SeasonSpring, entropy.NewSequence(5, 50, 10, 20), []string{"fish"}, nil)
	if err != nil {
		t.Fatalf("GenerateWithLog: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("offers = %d, want 2", len(offers))
	}
	offers, err = g.GenerateWithLog(Location{Size: 1}, goods.SeasonSpring, entropy.NewSequence(5, 50), nil, nil)
	if err != nil {
		t.Fatalf("GenerateWithLog: %v", err)
	}
	if len(offers) != 1 || offers[0].Product != "fish" || offers[0].Size != 50 {
		t.Fatalf("offers = %+v, want fish 50", offers)
	}
}

func TestGenerateRandomTradeCenter(t *testing.T) {
	g := NewGenerator(nil)
	loc := Location{Size: 1, Wealth: 1, TradeCenter: true}
	offers, log, err := g.Generate(loc, goods.SeasonSpring, entropy.NewSequence(5, 34, 10, 20), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(offers) != 2 {
		t.Fatalf("offers = %d, want 2", len(offers))
	}
	if offers[0].Product != "fish" || offers[0].Size != 90 {
		t.Fatalf("first offer = %+v, want fish 90", offers[0])
	}
	if offers[1].Product != "grain" || offers[1].Size != 40 {
		t.Fatalf("second offer = %+v, want grain 40", offers[1])
	}
	if log.Len() != 4 {
		t.Fatalf("log has %d records, want 4", log.Len())
	}
	if r, ok := log.Find(entropy.PurposeBonusSize, "grain"); !ok || r.Values[0] != 20 {
		t.Fatalf("bonus size record = %+v, %v", r, ok)
	}
}

func TestGenerateManualPicksOneOutsideTradeCenter(t *testing.T) {
	g := NewGenerator(nil)
	names := []string{"grain", "fish", "timber"}
	offers, log, err := g.Generate(Location{Size: 1}, goods.SeasonSpring, entropy.NewSequence(2, 50), names)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(offers) != 1 || offers[0].Product != "fish" || offers[0].Size != 50 {
		t.Fatalf("offers = %+v, want [fish 50]", offers)
	}
	if r, ok := log.Find(entropy.PurposeManualPick, "fish"); !ok || r.Values[0] != 2 {
		t.Fatalf("pick record = %+v, %v", r, ok)
	}
}

func TestGenerateManualSkipsUnknown(t *testing.T) {
	g := NewGenerator(nil)
	offers, log, err := g.Generate(Location{Size: 2}, goods.SeasonSummer, entropy.NewSequence(50), []string{"unicorns"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(offers) != 0 || log.Len() != 0 {
		t.Fatalf("offers = %+v, log = %d, want none", offers, log.Len())
	}
}

func TestGenerateManualTradeCenter(t *testing.T) {
	g := NewGenerator(nil)
	loc := Location{Size: 1, Wealth: 1, TradeCenter: true}
	names := []string{"fish", "grain", "unicorns", "timber"}
	offers, log, err := g.Generate(loc, goods.SeasonSpring, entropy.NewSequence(10, 20, 30, 5, 40), names)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(offers) != MaxTradeCenterOffers {
		t.Fatalf("offers = %d, want %d", len(offers), MaxTradeCenterOffers)
	}
	if offers[0].Product != "fish" || offers[1].Product != "grain" {
		t.Fatalf("offers = %+v, want fish then grain", offers)
	}
	if _, ok := log.Find(entropy.PurposeSize, "timber"); !ok {
		t.Fatalf("timber size roll should be logged even though the offer was cut")
	}
	if r, ok := log.Find(entropy.PurposeBonusProduct, "fish"); !ok || r.Values[0] != 5 {
		t.Fatalf("bonus product record = %+v, %v", r, ok)
	}
}

func TestGenerateManualTradeCenterAddsBonus(t *testing.T) {
	g := NewGenerator(nil)
	loc := Location{Size: 1, Wealth: 1, TradeCenter: true}
	offers, _, err := g.Generate(loc, goods.SeasonWinter, entropy.NewSequence(94, 10), []string{"unicorns"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(offers) != 1 || offers[0].Product != "alcohol" || !offers[0].Special() {
		t.Fatalf("offers = %+v, want [alcohol special]", offers)
	}
}

type outOfRangeSource struct{}

func (outOfRangeSource) Intn(n int) int { return n }

func TestGeneratePropagatesRangeLookup(t *testing.T) {
	g := NewGenerator(nil)
	_, _, err := g.Generate(Location{Size: 1}, goods.SeasonSpring, outOfRangeSource{}, nil)
	if !errors.Is(err, goods.ErrRangeLookup) {
		t.Fatalf("err = %v, want ErrRangeLookup", err)
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	g := NewGenerator(nil)
	bad := []struct {
		loc    Location
		season goods.Season
	}{
		{Location{Size: -1, Wealth: 3}, goods.SeasonSpring},
		{Location{}, goods.SeasonSpring},
		{Location{Size: 1}, goods.Season(7)},
	}
	for _, b := range bad {
		if _, _, err := g.Generate(b.loc, b.season, entropy.NewSequence(5), nil); !errors.Is(err, goods.ErrInvalidInput) {
			t.Fatalf("Generate(%+v, %d) err = %v", b.loc, b.season, err)
		}
	}
}

func TestVisit(t *testing.T) {
	g := NewGenerator(nil)

	v, err := g.Visit(Location{Size: 1}, goods.SeasonSpring, entropy.NewSequence(50), nil)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if v.Available || len(v.Offers) != 0 || v.Log.Len() != 1 {
		t.Fatalf("visit = %+v, want unavailable with one logged roll", v)
	}

	v, err = g.Visit(Location{Size: 1}, goods.SeasonSpring, entropy.NewSequence(3, 5, 50), nil)
	if err != nil {
		t.Fatalf("Visit: %v", err)
	}
	if !v.Available || len(v.Offers) != 1 || v.Offers[0].Product != "fish" {
		t.Fatalf("visit = %+v, want fish", v)
	}
	if v.Log.Len() != 3 {
		t.Fatalf("log = %d records, want 3", v.Log.Len())
	}
}

func TestParseProductList(t *testing.T) {
	got := ParseProductList(" Fish, grain ,, TIMBER ,")
	want := []string{"fish", "grain", "timber"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseProductList = %v, want %v", got, want)
	}
	if got := ParseProductList("   "); got != nil {
		t.Fatalf("ParseProductList(blank) = %v, want nil", got)
	}
}
