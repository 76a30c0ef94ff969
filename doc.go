// Package gstrategy is a catalogue of options strategies.
//
// Each calculator takes the strikes of its legs, the expiration date and the
// current underlying price and returns the strategy's maximum profit and
// maximum loss as a Result. A subset of strategies values its legs with the
// Black-Scholes kernel in gformula and takes a Market instead of a bare
// underlying price; those return an error when the market is invalid.
//
// The expiration date is accepted for every strategy but does not take part in
// any formula. Time to expiry for priced strategies is carried by Market.
//
// Calculators are pure functions and never log. Hand the returned values to a
// greport.Reporter to print or record them.
package gstrategy
