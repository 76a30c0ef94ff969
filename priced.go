package gstrategy

import (
	"code.bydev.io/fbu/gateway/gway.git/gstrategy/gformula"
)

// legPricer prices legs on one market and keeps the first error.
// Once an error is recorded, later legs are skipped and price returns 0.
type legPricer struct {
	market Market
	legs   []Leg
	err    error
}

func newLegPricer(m Market, n int) *legPricer {
	return &legPricer{market: m, legs: make([]Leg, 0, n)}
}

func (p *legPricer) price(action Action, typ gformula.OptionType, strike float64) float64 {
	if p.err != nil {
		return 0
	}
	leg, err := p.market.leg(action, typ, strike)
	if err != nil {
		p.err = err
		return 0
	}
	p.legs = append(p.legs, leg)
	return leg.Premium
}

func (p *legPricer) result(name Name, maxProfit, maxLoss Bound) (Result, error) {
	if p.err != nil {
		return Result{}, wrapErr(p.err, name)
	}
	return Result{Strategy: name, MaxProfit: maxProfit, MaxLoss: maxLoss, Legs: p.legs}, nil
}

// VerticalSpread buys one option and sells another on the same underlying.
// Premiums are quoted per share, profit and loss per contract of ContractMultiplier shares.
// Leg types default to call, see WithBuyType and WithSellType.
func VerticalSpread(buyStrike, sellStrike float64, expirationDate string, m Market, opts ...Option) (Result, error) {
	o := newOptions(opts)
	p := newLegPricer(m, 2)
	buyPremium := p.price(ActionBuy, o.buyType, buyStrike)
	sellPremium := p.price(ActionSell, o.sellType, sellStrike)

	return p.result(NameVerticalSpread,
		Finite((sellPremium-buyPremium)*ContractMultiplier),
		Finite((buyPremium-sellPremium)*ContractMultiplier))
}

// Combination buys a call and a put at different strikes.
func Combination(callStrike, putStrike float64, expirationDate string, m Market) (Result, error) {
	p := newLegPricer(m, 2)
	callPremium := p.price(ActionBuy, gformula.OptionTypeCall, callStrike)
	putPremium := p.price(ActionBuy, gformula.OptionTypePut, putStrike)

	return p.result(NameCombination, Unlimited, loss(callPremium+putPremium))
}

// Collar holds stock bought at buyStockPrice, sells a call and buys a put.
func Collar(buyStockPrice, sellCallStrike, buyPutStrike float64, expirationDate string, m Market) (Result, error) {
	p := newLegPricer(m, 2)
	callPremium := p.price(ActionSell, gformula.OptionTypeCall, sellCallStrike)
	putPremium := p.price(ActionBuy, gformula.OptionTypePut, buyPutStrike)

	return p.result(NameCollar,
		Finite(callPremium+(buyStockPrice-buyPutStrike)-putPremium),
		Finite(buyStockPrice-buyPutStrike-callPremium))
}

// RiskReversal buys a call financed by selling a put.
func RiskReversal(callStrike, putStrike float64, expirationDate string, m Market) (Result, error) {
	p := newLegPricer(m, 2)
	callPremium := p.price(ActionBuy, gformula.OptionTypeCall, callStrike)
	putPremium := p.price(ActionSell, gformula.OptionTypePut, putStrike)

	return p.result(NameRiskReversal, Unlimited, loss(callPremium-putPremium))
}

// BoxSpread bounds are set by strikes alone; the bought call and put are
// priced and returned in Result.Legs.
func BoxSpread(buyCallStrike, sellCallStrike, buyPutStrike, sellPutStrike float64, expirationDate string, m Market) (Result, error) {
	p := newLegPricer(m, 2)
	p.price(ActionBuy, gformula.OptionTypeCall, buyCallStrike)
	p.price(ActionBuy, gformula.OptionTypePut, buyPutStrike)

	callWidth := sellCallStrike - buyCallStrike
	return p.result(NameBoxSpread, Finite(callWidth), loss(buyPutStrike-sellPutStrike-callWidth))
}

// IronButterfly bounds are set by strikes alone; the first bought call and put
// are priced and returned in Result.Legs.
func IronButterfly(buyCallStrike, sellCallStrike, sellCallStrike2, buyCallStrike2,
	buyPutStrike, sellPutStrike, sellPutStrike2, buyPutStrike2 float64, expirationDate string, m Market) (Result, error) {
	p := newLegPricer(m, 2)
	p.price(ActionBuy, gformula.OptionTypeCall, buyCallStrike)
	p.price(ActionBuy, gformula.OptionTypePut, buyPutStrike)

	callWidth := sellCallStrike - buyCallStrike
	return p.result(NameIronButterfly, Finite(callWidth), loss(buyPutStrike2-sellPutStrike2-callWidth+callWidth))
}
