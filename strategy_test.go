package gstrategy

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const expiry = "2024-12-20"

func shouldBeFinite(b Bound, expected float64) {
	v, ok := b.Value()
	So(ok, ShouldBeTrue)
	So(v, ShouldAlmostEqual, expected, 1e-9)
}

func TestNames(t *testing.T) {
	Convey("test names", t, func() {
		names := Names()
		So(len(names), ShouldEqual, 53)

		seen := make(map[Name]bool)
		priced := 0
		for _, n := range names {
			So(seen[n], ShouldBeFalse)
			seen[n] = true
			if n.Priced() {
				priced++
			}
		}
		So(priced, ShouldEqual, 14)
		So(NameBoxSpread.Priced(), ShouldBeTrue)
		So(NameLongCall.Priced(), ShouldBeFalse)

		names[0] = "changed"
		So(Names()[0], ShouldEqual, NameIronCondor)
	})
}

func TestSingleLeg(t *testing.T) {
	Convey("test single leg", t, func() {
		r := LongCall(100, expiry, 105)
		So(r.Strategy, ShouldEqual, NameLongCall)
		So(r.MaxProfit, ShouldResemble, Unlimited)
		shouldBeFinite(r.MaxLoss, -100)

		r = ShortPut(100, expiry, 105)
		shouldBeFinite(r.MaxProfit, 100)
		So(r.MaxLoss, ShouldResemble, UnlimitedLoss)

		r = LongPut(95, expiry, 100)
		So(r.MaxProfit, ShouldResemble, Unlimited)
		shouldBeFinite(r.MaxLoss, -5)

		r = ShortCall(110, expiry, 100)
		shouldBeFinite(r.MaxProfit, 110)
		So(r.MaxLoss.Sign(), ShouldEqual, -1)
		So(r.Legs, ShouldBeNil)
	})
}

func TestVolatility(t *testing.T) {
	Convey("test straddle strangle guts", t, func() {
		r := LongStraddle(100, 100, expiry, 100)
		So(r.MaxProfit, ShouldResemble, Unlimited)
		shouldBeFinite(r.MaxLoss, -200)

		r = ShortStraddle(100, 100, expiry, 100)
		shouldBeFinite(r.MaxProfit, 200)
		So(r.MaxLoss, ShouldResemble, UnlimitedLoss)

		r = LongStrangle(110, 90, expiry, 100)
		shouldBeFinite(r.MaxLoss, -200)
		r = ShortStrangle(110, 90, expiry, 100)
		shouldBeFinite(r.MaxProfit, 200)

		r = LongGuts(110, 90, expiry, 100)
		So(r.MaxProfit, ShouldResemble, Unlimited)
		shouldBeFinite(r.MaxLoss, -20)
		r = ShortGuts(110, 90, expiry, 100)
		shouldBeFinite(r.MaxProfit, 20)
		So(r.MaxLoss, ShouldResemble, UnlimitedLoss)
	})
}

func TestSpreads(t *testing.T) {
	Convey("test spreads", t, func() {
		Convey("vertical width is independent of strike order", func() {
			for _, fn := range []func(float64, float64, string, float64) Result{
				BullCallSpread, BearCallSpread, BullPutSpread, BearPutSpread,
			} {
				r := fn(95, 105, expiry, 100)
				shouldBeFinite(r.MaxProfit, 10)
				shouldBeFinite(r.MaxLoss, -10)

				r = fn(105, 95, expiry, 100)
				shouldBeFinite(r.MaxProfit, 10)
				shouldBeFinite(r.MaxLoss, -10)
			}
			So(BullCallSpread(95, 105, expiry, 100).Strategy, ShouldEqual, NameBullCallSpread)
			So(BearPutSpread(95, 105, expiry, 100).Strategy, ShouldEqual, NameBearPutSpread)
		})

		Convey("iron condor", func() {
			r := IronCondor(110, 105, 95, 90, expiry, 100)
			shouldBeFinite(r.MaxProfit, -5+5)
			shouldBeFinite(r.MaxLoss, -5-5)
		})

		Convey("covered and protective", func() {
			r := CoveredCall(100, 110, expiry, 102)
			shouldBeFinite(r.MaxProfit, 10)
			shouldBeFinite(r.MaxLoss, -(100 - 102 + 110))

			r = CoveredPut(100, 90, expiry, 98)
			shouldBeFinite(r.MaxProfit, 10)
			shouldBeFinite(r.MaxLoss, -(98 - 100 + 90))

			r = ProtectiveCall(100, 105, expiry, 100)
			So(r.MaxProfit, ShouldResemble, Unlimited)
			shouldBeFinite(r.MaxLoss, 5)

			r = ProtectivePut(100, 95, expiry, 100)
			So(r.MaxProfit, ShouldResemble, Unlimited)
			shouldBeFinite(r.MaxLoss, 5)
		})
	})
}

func TestWings(t *testing.T) {
	Convey("test butterfly condor calendar diagonal ratio", t, func() {
		r := LongCallButterfly(90, 100, 110, expiry, 100)
		shouldBeFinite(r.MaxProfit, 10)
		shouldBeFinite(r.MaxLoss, 0)

		r = LongPutButterfly(90, 100, 115, expiry, 100)
		shouldBeFinite(r.MaxProfit, 10)
		shouldBeFinite(r.MaxLoss, -5)

		r = LongCallCondor(90, 95, 105, 110, expiry, 100)
		shouldBeFinite(r.MaxProfit, 5)
		shouldBeFinite(r.MaxLoss, 0)

		r = LongCallRatio(95, 100, 110, expiry, 100)
		shouldBeFinite(r.MaxProfit, 5)
		shouldBeFinite(r.MaxLoss, -10)

		r = LongCallCalendar(90, 100, 120, expiry, 100)
		shouldBeFinite(r.MaxLoss, -10)
		So(r, ShouldResemble, Result{Strategy: NameLongCallCalendar, MaxProfit: r.MaxProfit, MaxLoss: r.MaxLoss})

		Convey("short variants mirror long variants", func() {
			type pair struct {
				long, short Result
				name        Name
			}
			pairs := []pair{
				{LongCallButterfly(90, 100, 115, expiry, 100), ShortCallButterfly(90, 100, 115, expiry, 100), NameShortCallButterfly},
				{LongPutButterfly(90, 100, 115, expiry, 100), ShortPutButterfly(90, 100, 115, expiry, 100), NameShortPutButterfly},
				{LongCallCondor(90, 95, 105, 120, expiry, 100), ShortCallCondor(90, 95, 105, 120, expiry, 100), NameShortCallCondor},
				{LongPutCondor(90, 95, 105, 120, expiry, 100), ShortPutCondor(90, 95, 105, 120, expiry, 100), NameShortPutCondor},
				{LongCallCalendar(90, 100, 120, expiry, 100), ShortCallCalendar(90, 100, 120, expiry, 100), NameShortCallCalendar},
				{LongPutCalendar(90, 100, 120, expiry, 100), ShortPutCalendar(90, 100, 120, expiry, 100), NameShortPutCalendar},
				{LongCallDiagonal(90, 100, 120, expiry, 100), ShortCallDiagonal(90, 100, 120, expiry, 100), NameShortCallDiagonal},
				{LongPutDiagonal(90, 100, 120, expiry, 100), ShortPutDiagonal(90, 100, 120, expiry, 100), NameShortPutDiagonal},
				{LongCallRatio(95, 100, 110, expiry, 100), ShortCallRatio(95, 100, 110, expiry, 100), NameShortCallRatio},
				{LongPutRatio(95, 100, 110, expiry, 100), ShortPutRatio(95, 100, 110, expiry, 100), NameShortPutRatio},
			}
			for _, p := range pairs {
				So(p.short.Strategy, ShouldEqual, p.name)
				So(p.short.MaxProfit, ShouldResemble, p.long.MaxLoss.Neg())
				So(p.short.MaxLoss, ShouldResemble, p.long.MaxProfit.Neg())
			}
		})
	})
}

func TestExpirationDateIsInert(t *testing.T) {
	Convey("test expiration date does not change results", t, func() {
		So(LongCallCondor(90, 95, 105, 110, "", 100), ShouldResemble, LongCallCondor(90, 95, 105, 110, "not a date", 100))
		So(IronCondor(110, 105, 95, 90, "2030-01-01", 100), ShouldResemble, IronCondor(110, 105, 95, 90, expiry, 100))
	})
}
