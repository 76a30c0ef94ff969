package gstrategy

import (
	"math"

	"github.com/pkg/errors"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy/gformula"
)

func (p *legPricer) payoff(name Name, underlying, value float64) (Payoff, error) {
	if p.err != nil {
		return Payoff{}, wrapErr(p.err, name)
	}
	return Payoff{Strategy: name, Underlying: underlying, Value: value, Legs: p.legs}, nil
}

// Straddle returns the profit of a bought call and put at the market's underlying price.
func Straddle(callStrike, putStrike float64, expirationDate string, m Market) (Payoff, error) {
	p := newLegPricer(m, 2)
	p.price(ActionBuy, gformula.OptionTypeCall, callStrike)
	putPremium := p.price(ActionBuy, gformula.OptionTypePut, putStrike)

	s := m.Underlying
	value := math.Max(0, s-callStrike-putPremium) + math.Max(0, callStrike-s-putPremium)
	return p.payoff(NameStraddle, s, value)
}

func Strangle(callStrike, putStrike float64, expirationDate string, m Market) (Payoff, error) {
	p := newLegPricer(m, 2)
	callPremium := p.price(ActionBuy, gformula.OptionTypeCall, callStrike)
	putPremium := p.price(ActionBuy, gformula.OptionTypePut, putStrike)

	s := m.Underlying
	value := math.Max(0, s-callStrike-putPremium) + math.Max(0, putStrike-s-callPremium)
	return p.payoff(NameStrangle, s, value)
}

// Butterfly buys calls at the outer strikes and sells two at the middle strike.
func Butterfly(buyCallStrike, sellCallStrike, buyCallStrike2 float64, expirationDate string, m Market) (Payoff, error) {
	p := newLegPricer(m, 3)
	buyPremium := p.price(ActionBuy, gformula.OptionTypeCall, buyCallStrike)
	sellPremium := p.price(ActionSell, gformula.OptionTypeCall, sellCallStrike)
	buyPremium2 := p.price(ActionBuy, gformula.OptionTypeCall, buyCallStrike2)

	s := m.Underlying
	value := math.Max(0, s-buyCallStrike-buyPremium) -
		2*math.Max(0, s-sellCallStrike-sellPremium) +
		math.Max(0, s-buyCallStrike2-buyPremium2)
	return p.payoff(NameButterfly, s, value)
}

func MarriedPut(buyStockPrice, buyPutStrike float64, expirationDate string, m Market) (Payoff, error) {
	p := newLegPricer(m, 1)
	putPremium := p.price(ActionBuy, gformula.OptionTypePut, buyPutStrike)

	s := m.Underlying
	value := math.Max(0, s-buyPutStrike-putPremium) + math.Max(0, buyPutStrike-s-buyStockPrice)
	return p.payoff(NameMarriedPut, s, value)
}

func MarriedCall(buyStockPrice, sellCallStrike float64, expirationDate string, m Market) (Payoff, error) {
	p := newLegPricer(m, 1)
	callPremium := p.price(ActionSell, gformula.OptionTypeCall, sellCallStrike)

	s := m.Underlying
	value := math.Max(0, sellCallStrike-s-buyStockPrice) + math.Max(0, s-sellCallStrike-callPremium)
	return p.payoff(NameMarriedCall, s, value)
}

func SyntheticPut(buyStockPrice, sellCallStrike float64, expirationDate string, m Market) (Payoff, error) {
	p := newLegPricer(m, 1)
	callPremium := p.price(ActionSell, gformula.OptionTypeCall, sellCallStrike)

	return p.payoff(NameSyntheticPut, m.Underlying, math.Max(0, sellCallStrike-buyStockPrice)-callPremium)
}

func SyntheticCall(buyStockPrice, sellPutStrike float64, expirationDate string, m Market) (Payoff, error) {
	p := newLegPricer(m, 1)
	putPremium := p.price(ActionSell, gformula.OptionTypePut, sellPutStrike)

	return p.payoff(NameSyntheticCall, m.Underlying, math.Max(0, buyStockPrice-sellPutStrike)-putPremium)
}

// BinaryOption pays the fixed payout when the option finishes in the money and
// loses the premium otherwise. Type defaults to call and payout to 100,
// see WithOptionType and WithPayout. A non-finite payout is rejected.
func BinaryOption(strike float64, expirationDate string, m Market, opts ...Option) (Payoff, error) {
	o := newOptions(opts)
	p := newLegPricer(m, 1)
	if math.IsNaN(o.payout) || math.IsInf(o.payout, 0) {
		p.err = errors.Wrapf(gformula.ErrInvalidMarketParameter, "payout must be finite, got %v", o.payout)
	}
	premium := p.price(ActionBuy, o.optionType, strike)

	s := m.Underlying
	inTheMoney := s > strike
	if o.optionType == gformula.OptionTypePut {
		inTheMoney = s < strike
	}
	value := -premium
	if inTheMoney {
		value = o.payout
	}
	return p.payoff(NameBinaryOption, s, value)
}
