package ledger

import (
	"errors"
	"strings"
	"testing"
	"time"

	"innkeep/pkg/date"
	apperrors "innkeep/pkg/errors"
)

func TestDepositAndWithdraw(t *testing.T) {
	account := NewAccount()
	d := date.New(2012, time.January, 10)

	if err := account.Deposit(1000, d); err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	if err := account.Deposit(2000, d.AddDays(3)); err != nil {
		t.Fatalf("Deposit returned error: %v", err)
	}
	if err := account.Withdraw(500, d.AddDays(4)); err != nil {
		t.Fatalf("Withdraw returned error: %v", err)
	}

	if got := account.Balance(); got != 2500 {
		t.Errorf("balance = %d, want 2500", got)
	}
	if got := account.TransactionCount(); got != 3 {
		t.Errorf("transaction count = %d, want 3", got)
	}
}

func TestWithdraw_Overdraw(t *testing.T) {
	account := NewAccount()
	d := date.New(2012, time.January, 10)
	account.Deposit(100, d)

	err := account.Withdraw(101, d)
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.Code != apperrors.CodeInsufficientFunds {
		t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeInsufficientFunds)
	}

	if got := account.Balance(); got != 100 {
		t.Errorf("failed withdrawal changed balance: %d", got)
	}
	if got := account.TransactionCount(); got != 1 {
		t.Errorf("failed withdrawal recorded: count = %d", got)
	}
}

func TestValidation(t *testing.T) {
	account := NewAccount()
	d := date.New(2012, time.January, 10)

	tests := []struct {
		name string
		run  func() error
	}{
		{name: "zero deposit", run: func() error { return account.Deposit(0, d) }},
		{name: "negative deposit", run: func() error { return account.Deposit(-1, d) }},
		{name: "zero withdrawal", run: func() error { return account.Withdraw(0, d) }},
		{name: "missing date", run: func() error { return account.Deposit(100, date.Date{}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			var appErr *apperrors.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("expected AppError, got %v", err)
			}
			if appErr.Code != apperrors.CodeInvalidInput {
				t.Errorf("code = %s, want %s", appErr.Code, apperrors.CodeInvalidInput)
			}
		})
	}

	if got := account.TransactionCount(); got != 0 {
		t.Errorf("rejected operations recorded: count = %d", got)
	}
}

func TestTransactions_NewestFirst(t *testing.T) {
	account := NewAccount()
	d := date.New(2012, time.January, 10)
	account.Deposit(1000, d)
	account.Deposit(2000, d.AddDays(3))

	txs := account.Transactions()
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].Amount != 2000 || txs[1].Amount != 1000 {
		t.Errorf("transactions not newest first: %+v", txs)
	}
}

func TestWriteStatement(t *testing.T) {
	account := NewAccount()
	account.Deposit(1000, date.New(2012, time.January, 10))
	account.Deposit(2000, date.New(2012, time.January, 13))
	account.Withdraw(500, date.New(2012, time.January, 14))

	var buf strings.Builder
	account.WriteStatement(&buf)

	want := "Date       | Amount | Balance\n" +
		"14-01-2012 | -500 | 2500\n" +
		"13-01-2012 | +2000 | 3000\n" +
		"10-01-2012 | +1000 | 1000\n"
	if got := buf.String(); got != want {
		t.Errorf("statement mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}
