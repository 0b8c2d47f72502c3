// Package economy implements a keyed-account ledger service. Accounts are
// either unique (owned by a player UUID) or virtual (owned by a plain string
// identifier such as a bank or faction), and hold a balance per currency.
package economy

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrUnknownCurrency is returned when a balance operation names a
	// currency the service does not carry.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInsufficientFunds is returned when a withdrawal or transfer would
	// push a balance below zero for a currency that forbids debt.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Currency describes a currency supported by the service. Balances are kept
// in minor units (Decimals digits behind the separator).
type Currency struct {
	Name     string
	Symbol   string
	Decimals int
	// AllowNegative permits balances below zero for this currency.
	AllowNegative bool
}

// Format renders an amount of minor units as a display string.
func (c Currency) Format(amount int64) string {
	if c.Decimals <= 0 {
		return fmt.Sprintf("%v%v", c.Symbol, amount)
	}
	div := int64(1)
	for i := 0; i < c.Decimals; i++ {
		div *= 10
	}
	major, minor := amount/div, amount%div
	if minor < 0 {
		minor = -minor
	}
	return fmt.Sprintf("%v%v.%0*d", c.Symbol, major, c.Decimals, minor)
}

// Account is a ledger account. Unique accounts carry the owning player's
// UUID; virtual accounts have a nil Owner and are keyed by Identifier alone.
type Account struct {
	Identifier string
	Owner      uuid.UUID
}

// Virtual reports whether the account is a virtual account.
func (a Account) Virtual() bool {
	return a.Owner == uuid.Nil
}

// Store is the persistence backend of a Service.
type Store interface {
	// Account looks up an account by identifier. The second return value is
	// false if no account with the identifier exists.
	Account(identifier string) (Account, bool, error)
	// PutAccount inserts an account. Inserting an existing identifier is a
	// no-op.
	PutAccount(a Account) error
	// Accounts returns all stored accounts.
	Accounts() ([]Account, error)
	// Balance returns the stored balance of an account in a currency. A
	// missing row reads as zero.
	Balance(identifier, currency string) (int64, error)
	// SetBalance stores the balance of an account in a currency.
	SetBalance(identifier, currency string, amount int64) error
	Close() error
}

// Config holds the settings of a Service.
type Config struct {
	// Store is the persistence backend. It must be set.
	Store Store
	// Currencies are the currencies carried by the service. The first entry
	// is the default currency. If empty, a single dollar currency is used.
	Currencies []Currency
	// Log is used for account lifecycle messages. If nil, a default logger
	// is used.
	Log *slog.Logger
}

func (conf Config) withDefaults() Config {
	if len(conf.Currencies) == 0 {
		conf.Currencies = []Currency{{Name: "dollar", Symbol: "$", Decimals: 2}}
	}
	if conf.Log == nil {
		conf.Log = slog.Default()
	}
	return conf
}

// New creates an economy service with conf. It panics if conf.Store is nil.
func (conf Config) New() *Service {
	conf = conf.withDefaults()
	if conf.Store == nil {
		panic("economy: Config.Store must not be nil")
	}
	currencies := make(map[string]Currency, len(conf.Currencies))
	for _, c := range conf.Currencies {
		currencies[c.Name] = c
	}
	return &Service{conf: conf, currencies: currencies}
}

// Service is a keyed-account economy service. All methods are safe for
// concurrent use; balance mutations are serialised on a single mutex so a
// transfer is atomic with respect to other transfers.
type Service struct {
	conf       Config
	currencies map[string]Currency

	mu sync.Mutex
}

// DefaultCurrency returns the service's default currency.
func (s *Service) DefaultCurrency() Currency {
	return s.conf.Currencies[0]
}

// Currencies returns all currencies carried by the service.
func (s *Service) Currencies() []Currency {
	out := make([]Currency, len(s.conf.Currencies))
	copy(out, s.conf.Currencies)
	return out
}

// HasAccount reports whether an account with the identifier passed exists.
func (s *Service) HasAccount(identifier string) (bool, error) {
	_, ok, err := s.conf.Store.Account(identifier)
	return ok, err
}

// Account returns the unique account of the player UUID passed, creating it
// if it does not yet exist.
func (s *Service) Account(id uuid.UUID) (Account, error) {
	return s.getOrCreate(Account{Identifier: id.String(), Owner: id})
}

// VirtualAccount returns the virtual account with the identifier passed,
// creating it if it does not yet exist.
func (s *Service) VirtualAccount(identifier string) (Account, error) {
	if identifier == "" {
		return Account{}, errors.New("virtual account identifier must not be empty")
	}
	return s.getOrCreate(Account{Identifier: identifier})
}

func (s *Service) getOrCreate(a Account) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok, err := s.conf.Store.Account(a.Identifier)
	if err != nil {
		return Account{}, fmt.Errorf("look up account %v: %w", a.Identifier, err)
	}
	if ok {
		return existing, nil
	}
	if err := s.conf.Store.PutAccount(a); err != nil {
		return Account{}, fmt.Errorf("create account %v: %w", a.Identifier, err)
	}
	s.conf.Log.Debug("economy: created account", "identifier", a.Identifier, "virtual", a.Virtual())
	return a, nil
}

// Accounts returns all accounts for which include returns true.
func (s *Service) Accounts(include func(Account) bool) ([]Account, error) {
	all, err := s.conf.Store.Accounts()
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, a := range all {
		if include(a) {
			out = append(out, a)
		}
	}
	return out, nil
}

// AllAccounts returns every account known to the service.
func (s *Service) AllAccounts() ([]Account, error) {
	return s.conf.Store.Accounts()
}

// Balance returns the balance of an account in the currency passed, in minor
// units.
func (s *Service) Balance(a Account, c Currency) (int64, error) {
	if _, ok := s.currencies[c.Name]; !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownCurrency, c.Name)
	}
	return s.conf.Store.Balance(a.Identifier, c.Name)
}

// Deposit adds an amount of minor units to an account's balance. The amount
// must not be negative.
func (s *Service) Deposit(a Account, c Currency, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("deposit amount %v must not be negative", amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(a, c, amount)
}

// Withdraw removes an amount of minor units from an account's balance. If
// the currency forbids debt and the balance would drop below zero, the
// balance is left untouched and an error wrapping ErrInsufficientFunds is
// returned.
func (s *Service) Withdraw(a Account, c Currency, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("withdrawal amount %v must not be negative", amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(a, c, -amount)
}

// Transfer moves an amount of minor units from one account to another. The
// withdrawal guard applies to the source account; on failure neither balance
// changes.
func (s *Service) Transfer(from, to Account, c Currency, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("transfer amount %v must not be negative", amount)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.add(from, c, -amount); err != nil {
		return err
	}
	if err := s.add(to, c, amount); err != nil {
		// Roll the withdrawal back so the money does not vanish.
		if rbErr := s.add(from, c, amount); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}
	return nil
}

// add applies a signed delta to an account balance. The caller must hold
// s.mu.
func (s *Service) add(a Account, c Currency, delta int64) error {
	cur, ok := s.currencies[c.Name]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCurrency, c.Name)
	}
	balance, err := s.conf.Store.Balance(a.Identifier, cur.Name)
	if err != nil {
		return fmt.Errorf("read balance of %v: %w", a.Identifier, err)
	}
	next := balance + delta
	if next < 0 && !cur.AllowNegative {
		return fmt.Errorf("%w: %v has %v, needs %v", ErrInsufficientFunds, a.Identifier, cur.Format(balance), cur.Format(-delta))
	}
	if err := s.conf.Store.SetBalance(a.Identifier, cur.Name, next); err != nil {
		return fmt.Errorf("write balance of %v: %w", a.Identifier, err)
	}
	return nil
}
