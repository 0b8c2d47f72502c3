package economy

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func newService(t *testing.T) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "economy.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return Config{Store: store}.New(), path
}

func TestAccountGetOrCreate(t *testing.T) {
	t.Parallel()
	s, _ := newService(t)

	id := uuid.New()
	a, err := s.Account(id)
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if a.Owner != id || a.Virtual() {
		t.Fatalf("account %+v not owned by %v", a, id)
	}

	again, err := s.Account(id)
	if err != nil {
		t.Fatalf("fetch account: %v", err)
	}
	if again != a {
		t.Fatalf("second fetch returned %+v, want %+v", again, a)
	}

	ok, err := s.HasAccount(id.String())
	if err != nil || !ok {
		t.Fatalf("HasAccount = %v, %v; want true, nil", ok, err)
	}
	ok, err = s.HasAccount("nobody")
	if err != nil || ok {
		t.Fatalf("HasAccount(nobody) = %v, %v; want false, nil", ok, err)
	}
}

func TestVirtualAccount(t *testing.T) {
	t.Parallel()
	s, _ := newService(t)

	a, err := s.VirtualAccount("server:bank")
	if err != nil {
		t.Fatalf("create virtual account: %v", err)
	}
	if !a.Virtual() {
		t.Fatalf("account %+v should be virtual", a)
	}
	if _, err := s.VirtualAccount(""); err == nil {
		t.Fatalf("expected error for empty identifier")
	}
}

func TestWithdrawGuardsNegativeBalance(t *testing.T) {
	t.Parallel()
	s, _ := newService(t)
	cur := s.DefaultCurrency()

	a, err := s.VirtualAccount("guarded")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if err := s.Deposit(a, cur, 500); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := s.Withdraw(a, cur, 700); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	balance, err := s.Balance(a, cur)
	if err != nil {
		t.Fatalf("read balance: %v", err)
	}
	if balance != 500 {
		t.Fatalf("balance changed on failed withdrawal: %v", balance)
	}
}

func TestNegativeBalanceAllowed(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "economy.db")
	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	cur := Currency{Name: "credit", Symbol: "c", AllowNegative: true}
	s := Config{Store: store, Currencies: []Currency{cur}}.New()

	a, err := s.VirtualAccount("debtor")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if err := s.Withdraw(a, cur, 300); err != nil {
		t.Fatalf("withdraw into debt: %v", err)
	}
	balance, _ := s.Balance(a, cur)
	if balance != -300 {
		t.Fatalf("balance = %v, want -300", balance)
	}
}

func TestTransfer(t *testing.T) {
	t.Parallel()
	s, _ := newService(t)
	cur := s.DefaultCurrency()

	from, _ := s.VirtualAccount("from")
	to, _ := s.VirtualAccount("to")
	if err := s.Deposit(from, cur, 1000); err != nil {
		t.Fatalf("deposit: %v", err)
	}

	if err := s.Transfer(from, to, cur, 400); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if b, _ := s.Balance(from, cur); b != 600 {
		t.Fatalf("source balance = %v, want 600", b)
	}
	if b, _ := s.Balance(to, cur); b != 400 {
		t.Fatalf("destination balance = %v, want 400", b)
	}

	if err := s.Transfer(from, to, cur, 5000); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if b, _ := s.Balance(from, cur); b != 600 {
		t.Fatalf("source balance changed on failed transfer: %v", b)
	}
	if b, _ := s.Balance(to, cur); b != 400 {
		t.Fatalf("destination balance changed on failed transfer: %v", b)
	}
}

func TestUnknownCurrency(t *testing.T) {
	t.Parallel()
	s, _ := newService(t)

	a, _ := s.VirtualAccount("acct")
	bogus := Currency{Name: "doubloon"}
	if _, err := s.Balance(a, bogus); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
	if err := s.Deposit(a, bogus, 1); !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("expected ErrUnknownCurrency, got %v", err)
	}
}

func TestAccountsPredicate(t *testing.T) {
	t.Parallel()
	s, _ := newService(t)

	if _, err := s.Account(uuid.New()); err != nil {
		t.Fatalf("create unique account: %v", err)
	}
	if _, err := s.VirtualAccount("bank"); err != nil {
		t.Fatalf("create virtual account: %v", err)
	}

	virtual, err := s.Accounts(func(a Account) bool { return a.Virtual() })
	if err != nil {
		t.Fatalf("filter accounts: %v", err)
	}
	if len(virtual) != 1 || virtual[0].Identifier != "bank" {
		t.Fatalf("virtual accounts = %+v, want just bank", virtual)
	}

	all, err := s.AllAccounts()
	if err != nil {
		t.Fatalf("all accounts: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %v accounts, want 2", len(all))
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "economy.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	s := Config{Store: store}.New()
	cur := s.DefaultCurrency()
	a, _ := s.VirtualAccount("persistent")
	if err := s.Deposit(a, cur, 250); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	store, err = OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()
	s = Config{Store: store}.New()
	ok, err := s.HasAccount("persistent")
	if err != nil || !ok {
		t.Fatalf("account lost across reopen: %v, %v", ok, err)
	}
	balance, err := s.Balance(Account{Identifier: "persistent"}, cur)
	if err != nil {
		t.Fatalf("read balance: %v", err)
	}
	if balance != 250 {
		t.Fatalf("balance = %v, want 250", balance)
	}
}
