// Package account models bank accounts that all earn the same, shared interest rate.
//
// Each Account owns its holder and balance. The interest rate belongs to the package
// itself: it is read and raised through package-level functions that take no Account,
// so they have no way of reaching into an account's fields.
package account

import "github.com/yama6a/shared-rate/internal/pkg/model"

const (
	// InitialInterestRate is the shared rate every process starts out with.
	InitialInterestRate = 0.08

	DaysPerYear = 365
)

// interestRate is shared by every Account in the process.
// It is not guarded: reading and raising it from multiple goroutines is a data race.
var interestRate = InitialInterestRate

type Account struct {
	owner  model.Owner
	amount float64
}

// New creates an account. Neither argument is validated, zero and negative amounts are fine.
func New(owner model.Owner, amount float64) *Account {
	return &Account{owner: owner, amount: amount}
}

func (a *Account) Owner() model.Owner {
	return a.owner
}

func (a *Account) Amount() float64 {
	return a.amount
}

// DailyReturn is one day's interest on the balance at the current shared rate.
func (a *Account) DailyReturn() float64 {
	return interestRate / DaysPerYear * a.amount
}

// RaiseInterest adds increment to the shared rate of all accounts, existing and future.
func RaiseInterest(increment float64) {
	interestRate += increment
}

// Interest returns the current shared rate.
func Interest() float64 {
	return interestRate
}
