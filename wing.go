package gstrategy

// Butterfly, calendar and diagonal spreads share the three strike layout
// buy / sell / buy2. Condors add a second sold strike, ratios sell twice.
// Every short variant is the mirror of its long variant on the same strikes.

func threeStrike(name Name, buyStrike, sellStrike, buyStrike2 float64) Result {
	width := sellStrike - buyStrike
	return Result{
		Strategy:  name,
		MaxProfit: Finite(width),
		MaxLoss:   loss(buyStrike2 - sellStrike - width),
	}
}

func condor(name Name, buyStrike, sellStrike, sellStrike2, buyStrike2 float64) Result {
	width := sellStrike - buyStrike
	return Result{
		Strategy:  name,
		MaxProfit: Finite(width),
		MaxLoss:   loss(buyStrike2 - sellStrike2 - width),
	}
}

func ratio(name Name, buyStrike, sellStrike, sellStrike2 float64) Result {
	width := sellStrike - buyStrike
	return Result{
		Strategy:  name,
		MaxProfit: Finite(width),
		MaxLoss:   loss(sellStrike2 - sellStrike - width + width),
	}
}

func LongCallButterfly(buyCallStrike, sellCallStrike, buyCallStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongCallButterfly, buyCallStrike, sellCallStrike, buyCallStrike2)
}

func LongPutButterfly(buyPutStrike, sellPutStrike, buyPutStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongPutButterfly, buyPutStrike, sellPutStrike, buyPutStrike2)
}

func ShortCallButterfly(buyCallStrike, sellCallStrike, buyCallStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongCallButterfly, buyCallStrike, sellCallStrike, buyCallStrike2).Mirror(NameShortCallButterfly)
}

func ShortPutButterfly(buyPutStrike, sellPutStrike, buyPutStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongPutButterfly, buyPutStrike, sellPutStrike, buyPutStrike2).Mirror(NameShortPutButterfly)
}

func LongCallCondor(buyCallStrike, sellCallStrike, sellCallStrike2, buyCallStrike2 float64, expirationDate string, underlying float64) Result {
	return condor(NameLongCallCondor, buyCallStrike, sellCallStrike, sellCallStrike2, buyCallStrike2)
}

func LongPutCondor(buyPutStrike, sellPutStrike, sellPutStrike2, buyPutStrike2 float64, expirationDate string, underlying float64) Result {
	return condor(NameLongPutCondor, buyPutStrike, sellPutStrike, sellPutStrike2, buyPutStrike2)
}

func ShortCallCondor(buyCallStrike, sellCallStrike, sellCallStrike2, buyCallStrike2 float64, expirationDate string, underlying float64) Result {
	return condor(NameLongCallCondor, buyCallStrike, sellCallStrike, sellCallStrike2, buyCallStrike2).Mirror(NameShortCallCondor)
}

func ShortPutCondor(buyPutStrike, sellPutStrike, sellPutStrike2, buyPutStrike2 float64, expirationDate string, underlying float64) Result {
	return condor(NameLongPutCondor, buyPutStrike, sellPutStrike, sellPutStrike2, buyPutStrike2).Mirror(NameShortPutCondor)
}

// LongCallCalendar strikes are ordered as for a butterfly; the legs differ in
// expiry, which this formula does not model.
func LongCallCalendar(buyCallStrike, sellCallStrike, buyCallStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongCallCalendar, buyCallStrike, sellCallStrike, buyCallStrike2)
}

func LongPutCalendar(buyPutStrike, sellPutStrike, buyPutStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongPutCalendar, buyPutStrike, sellPutStrike, buyPutStrike2)
}

func ShortCallCalendar(buyCallStrike, sellCallStrike, buyCallStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongCallCalendar, buyCallStrike, sellCallStrike, buyCallStrike2).Mirror(NameShortCallCalendar)
}

func ShortPutCalendar(buyPutStrike, sellPutStrike, buyPutStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongPutCalendar, buyPutStrike, sellPutStrike, buyPutStrike2).Mirror(NameShortPutCalendar)
}

func LongCallDiagonal(buyCallStrike, sellCallStrike, buyCallStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongCallDiagonal, buyCallStrike, sellCallStrike, buyCallStrike2)
}

func LongPutDiagonal(buyPutStrike, sellPutStrike, buyPutStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongPutDiagonal, buyPutStrike, sellPutStrike, buyPutStrike2)
}

func ShortCallDiagonal(buyCallStrike, sellCallStrike, buyCallStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongCallDiagonal, buyCallStrike, sellCallStrike, buyCallStrike2).Mirror(NameShortCallDiagonal)
}

func ShortPutDiagonal(buyPutStrike, sellPutStrike, buyPutStrike2 float64, expirationDate string, underlying float64) Result {
	return threeStrike(NameLongPutDiagonal, buyPutStrike, sellPutStrike, buyPutStrike2).Mirror(NameShortPutDiagonal)
}

func LongCallRatio(buyCallStrike, sellCallStrike, sellCallStrike2 float64, expirationDate string, underlying float64) Result {
	return ratio(NameLongCallRatio, buyCallStrike, sellCallStrike, sellCallStrike2)
}

func LongPutRatio(buyPutStrike, sellPutStrike, sellPutStrike2 float64, expirationDate string, underlying float64) Result {
	return ratio(NameLongPutRatio, buyPutStrike, sellPutStrike, sellPutStrike2)
}

func ShortCallRatio(buyCallStrike, sellCallStrike, sellCallStrike2 float64, expirationDate string, underlying float64) Result {
	return ratio(NameLongCallRatio, buyCallStrike, sellCallStrike, sellCallStrike2).Mirror(NameShortCallRatio)
}

func ShortPutRatio(buyPutStrike, sellPutStrike, sellPutStrike2 float64, expirationDate string, underlying float64) Result {
	return ratio(NameLongPutRatio, buyPutStrike, sellPutStrike, sellPutStrike2).Mirror(NameShortPutRatio)
}
