package wallet

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

var (
	ErrNonPositiveBalance = errors.New("a wallet must start with a positive balance")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrInsufficientFunds  = errors.New("insufficient funds in the wallet")
)

// Wallet is a balance that can be read, credited and debited.
type Wallet interface {
	Balance() float64
	Deposit(amount float64) error
	// Withdraw debits amount and reports whether the balance could cover it.
	Withdraw(amount float64) (bool, error)
}

// Memory is an in-process Wallet safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	balance float64
}

// New creates a Memory wallet holding initial, which must be positive.
func New(initial float64) (*Memory, error) {
	if !(initial > 0) {
		return nil, fmt.Errorf("%w: %v", ErrNonPositiveBalance, initial)
	}
	return &Memory{balance: initial}, nil
}

// Balance returns the balance rounded to cents.
func (w *Memory) Balance() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return roundCents(w.balance)
}

func (w *Memory) Deposit(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.balance += amount
	return nil
}

// Withdraw debits amount. It returns false, leaving the balance untouched,
// when amount exceeds the balance.
func (w *Memory) Withdraw(amount float64) (bool, error) {
	if amount < 0 {
		return false, ErrNegativeAmount
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if amount > w.balance {
		return false, nil
	}
	w.balance -= amount
	return true, nil
}

// Reconcile moves the difference between two engine balances into w:
// a gain is deposited, a loss is withdrawn.
func Reconcile(w Wallet, before, after float64) error {
	delta := roundCents(after - before)
	switch {
	case delta > 0:
		return w.Deposit(delta)
	case delta < 0:
		ok, err := w.Withdraw(-delta)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, -delta, w.Balance())
		}
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
