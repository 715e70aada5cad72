// Package wallet provides the balance ledger shared by the games of the
// arcade and the adapter that reconciles it with the balance reported by the
// truco engine after each settlement.
//
// The engine never touches a Wallet directly: callers read the engine
// balance before and after a hand and hand both values to Reconcile.
package wallet
