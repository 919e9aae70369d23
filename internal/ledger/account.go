// Package ledger implements a standalone bank account: deposits,
// withdrawals and a printable statement. It shares no state with the
// booking engine; both only agree on integer currency units and
// calendar dates.
package ledger

import (
	"fmt"
	"io"
	"sync"

	"innkeep/pkg/date"
	apperrors "innkeep/pkg/errors"
)

type TransactionType string

const (
	TransactionDeposit    TransactionType = "DEPOSIT"
	TransactionWithdrawal TransactionType = "WITHDRAWAL"
)

// Transaction is an immutable statement line: once recorded it is never
// edited or removed.
type Transaction struct {
	Date         date.Date       `json:"date"`
	Amount       int             `json:"amount"`
	Type         TransactionType `json:"type"`
	BalanceAfter int             `json:"balance_after"`
}

type Account struct {
	mu           sync.Mutex
	balance      int
	transactions []Transaction
}

// NewAccount starts with a zero balance and an empty history.
func NewAccount() *Account {
	return &Account{}
}

func (a *Account) Deposit(amount int, d date.Date) error {
	if err := validateAmountAndDate(amount, d); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance += amount
	a.transactions = append(a.transactions, Transaction{
		Date:         d,
		Amount:       amount,
		Type:         TransactionDeposit,
		BalanceAfter: a.balance,
	})
	return nil
}

func (a *Account) Withdraw(amount int, d date.Date) error {
	if err := validateAmountAndDate(amount, d); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if amount > a.balance {
		return apperrors.InsufficientFunds(amount, a.balance)
	}

	a.balance -= amount
	a.transactions = append(a.transactions, Transaction{
		Date:         d,
		Amount:       amount,
		Type:         TransactionWithdrawal,
		BalanceAfter: a.balance,
	})
	return nil
}

func (a *Account) Balance() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

func (a *Account) TransactionCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.transactions)
}

// Transactions returns copies, newest first.
func (a *Account) Transactions() []Transaction {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]Transaction, 0, len(a.transactions))
	for i := len(a.transactions) - 1; i >= 0; i-- {
		out = append(out, a.transactions[i])
	}
	return out
}

// WriteStatement prints the statement, newest transaction first, as
// "Date | Amount | Balance" rows. Deposits carry a plus sign,
// withdrawals a minus sign.
func (a *Account) WriteStatement(w io.Writer) {
	fmt.Fprintln(w, "Date       | Amount | Balance")
	for _, t := range a.Transactions() {
		fmt.Fprintf(w, "%s | %s | %d\n", t.Date.Format("02-01-2006"), formatAmount(t), t.BalanceAfter)
	}
}

func formatAmount(t Transaction) string {
	if t.Type == TransactionDeposit {
		return fmt.Sprintf("+%d", t.Amount)
	}
	return fmt.Sprintf("-%d", t.Amount)
}

func validateAmountAndDate(amount int, d date.Date) error {
	if amount <= 0 {
		return apperrors.InvalidInput(fmt.Sprintf("amount must be positive, got %d", amount))
	}
	if d.IsZero() {
		return apperrors.InvalidInput("date is required")
	}
	return nil
}
