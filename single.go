package gstrategy

func LongCall(callStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameLongCall, MaxProfit: Unlimited, MaxLoss: loss(callStrike)}
}

func LongPut(putStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameLongPut, MaxProfit: Unlimited, MaxLoss: loss(underlying - putStrike)}
}

func ShortCall(callStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameShortCall, MaxProfit: Finite(callStrike), MaxLoss: UnlimitedLoss}
}

func ShortPut(putStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameShortPut, MaxProfit: Finite(putStrike), MaxLoss: UnlimitedLoss}
}

// long and short volatility positions

func LongStraddle(callStrike, putStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameLongStraddle, MaxProfit: Unlimited, MaxLoss: loss(callStrike + putStrike)}
}

func ShortStraddle(callStrike, putStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameShortStraddle, MaxProfit: Finite(callStrike + putStrike), MaxLoss: UnlimitedLoss}
}

func LongStrangle(callStrike, putStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameLongStrangle, MaxProfit: Unlimited, MaxLoss: loss(callStrike + putStrike)}
}

func ShortStrangle(callStrike, putStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameShortStrangle, MaxProfit: Finite(callStrike + putStrike), MaxLoss: UnlimitedLoss}
}

// LongGuts buys an in-the-money call and an in-the-money put.
func LongGuts(callStrike, putStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameLongGuts, MaxProfit: Unlimited, MaxLoss: loss(callStrike - putStrike)}
}

func ShortGuts(callStrike, putStrike float64, expirationDate string, underlying float64) Result {
	return Result{Strategy: NameShortGuts, MaxProfit: Finite(callStrike - putStrike), MaxLoss: UnlimitedLoss}
}
