package gstrategy

import (
	"encoding/json"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBound(t *testing.T) {
	Convey("test bound", t, func() {
		Convey("finite", func() {
			b := Finite(12.5)
			v, ok := b.Value()
			So(ok, ShouldBeTrue)
			So(v, ShouldEqual, 12.5)
			So(b.IsBounded(), ShouldBeTrue)
			So(b.Sign(), ShouldEqual, 0)
			So(b.String(), ShouldEqual, "12.5")
			So(b.Neg(), ShouldResemble, Finite(-12.5))
			So(Bound{}, ShouldResemble, Finite(0))
		})

		Convey("unbounded", func() {
			_, ok := Unlimited.Value()
			So(ok, ShouldBeFalse)
			So(Unlimited.IsBounded(), ShouldBeFalse)
			So(math.IsInf(Unlimited.Float64(), 1), ShouldBeTrue)
			So(math.IsInf(UnlimitedLoss.Float64(), -1), ShouldBeTrue)
			So(Unlimited.String(), ShouldEqual, "+inf")
			So(UnlimitedLoss.String(), ShouldEqual, "-inf")
			So(Unlimited.Neg(), ShouldResemble, UnlimitedLoss)
			So(UnlimitedLoss.Neg(), ShouldResemble, Unlimited)
			So(Unbounded(1), ShouldResemble, Unlimited)
			So(Unbounded(-1), ShouldResemble, UnlimitedLoss)
			So(Finite(math.Inf(-1)), ShouldResemble, UnlimitedLoss)
		})

		Convey("nan is neither bounded nor unbounded", func() {
			b := Finite(math.NaN())
			_, ok := b.Value()
			So(ok, ShouldBeFalse)
			So(b.IsBounded(), ShouldBeFalse)
			So(b.IsNaN(), ShouldBeTrue)
			So(b.Sign(), ShouldEqual, 0)
			So(b.Neg().IsNaN(), ShouldBeTrue)
			So(b.String(), ShouldEqual, "NaN")
			So(math.IsNaN(b.Float64()), ShouldBeTrue)

			r := LongCall(math.NaN(), expiry, 100)
			So(r.MaxLoss.IsNaN(), ShouldBeTrue)
			So(r.MaxProfit, ShouldResemble, Unlimited)

			data, err := json.Marshal(r.MaxLoss)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "null")
		})

		Convey("negated zero stays positive", func() {
			v, _ := Finite(0).Neg().Value()
			So(math.Signbit(v), ShouldBeFalse)
			So(loss(0).String(), ShouldEqual, "0")
		})

		Convey("json", func() {
			data, err := json.Marshal(Result{Strategy: NameLongCall, MaxProfit: Unlimited, MaxLoss: Finite(-100)})
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `{"strategy":"long_call","max_profit":"+inf","max_loss":-100}`)

			data, err = json.Marshal(UnlimitedLoss)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, `"-inf"`)
		})
	})
}
