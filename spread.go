package gstrategy

import "math"

// loss reports a loss of the given amount as a non-positive Bound.
func loss(amount float64) Bound {
	return Finite(0 - amount)
}

// IronCondor sells a call spread above and a put spread below the underlying.
func IronCondor(buyCallStrike, sellCallStrike, sellPutStrike, buyPutStrike float64, expirationDate string, underlying float64) Result {
	return Result{
		Strategy:  NameIronCondor,
		MaxProfit: Finite((sellCallStrike - buyCallStrike) + (sellPutStrike - buyPutStrike)),
		MaxLoss:   Finite((sellCallStrike - buyCallStrike) - (underlying - sellPutStrike)),
	}
}

// verticalWidth is the distance between the two strikes of a vertical spread,
// whichever side is bought.
func verticalWidth(name Name, buyStrike, sellStrike float64) Result {
	width := math.Abs(sellStrike - buyStrike)
	return Result{Strategy: name, MaxProfit: Finite(width), MaxLoss: loss(width)}
}

func BullCallSpread(buyCallStrike, sellCallStrike float64, expirationDate string, underlying float64) Result {
	return verticalWidth(NameBullCallSpread, buyCallStrike, sellCallStrike)
}

func BearCallSpread(buyCallStrike, sellCallStrike float64, expirationDate string, underlying float64) Result {
	return verticalWidth(NameBearCallSpread, buyCallStrike, sellCallStrike)
}

func BullPutSpread(buyPutStrike, sellPutStrike float64, expirationDate string, underlying float64) Result {
	return verticalWidth(NameBullPutSpread, buyPutStrike, sellPutStrike)
}

func BearPutSpread(buyPutStrike, sellPutStrike float64, expirationDate string, underlying float64) Result {
	return verticalWidth(NameBearPutSpread, buyPutStrike, sellPutStrike)
}

// CoveredCall holds stock bought at buyStockPrice and sells a call against it.
func CoveredCall(buyStockPrice, sellCallStrike float64, expirationDate string, underlying float64) Result {
	return Result{
		Strategy:  NameCoveredCall,
		MaxProfit: Finite(sellCallStrike - buyStockPrice),
		MaxLoss:   loss(buyStockPrice - underlying + sellCallStrike),
	}
}

// CoveredPut holds a short stock position and sells a put against it.
func CoveredPut(buyStockPrice, sellPutStrike float64, expirationDate string, underlying float64) Result {
	return Result{
		Strategy:  NameCoveredPut,
		MaxProfit: Finite(buyStockPrice - sellPutStrike),
		MaxLoss:   loss(underlying - buyStockPrice + sellPutStrike),
	}
}

func ProtectiveCall(buyStockPrice, buyCallStrike float64, expirationDate string, underlying float64) Result {
	return Result{
		Strategy:  NameProtectiveCall,
		MaxProfit: Unlimited,
		MaxLoss:   loss(buyStockPrice - buyCallStrike),
	}
}

func ProtectivePut(buyStockPrice, buyPutStrike float64, expirationDate string, underlying float64) Result {
	return Result{
		Strategy:  NameProtectivePut,
		MaxProfit: Unlimited,
		MaxLoss:   loss(buyPutStrike - buyStockPrice),
	}
}
