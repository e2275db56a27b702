package pcg

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/liasse-dev/liasse/internal/model"
)

// Service provides in-memory lookup over the plan comptable.
type Service struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewService creates a Service from a slice of accounts, sorted by code.
func NewService(accounts []model.Account) *Service {
	sorted := make([]model.Account, len(accounts))
	copy(sorted, accounts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	byCode := make(map[string]model.Account, len(sorted))
	for _, a := range sorted {
		byCode[a.Code] = a
	}
	return &Service{accounts: sorted, byCode: byCode}
}

// Load reads plan-comptable.csv from a books root and returns a Service.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "accounts", "plan-comptable.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening plan comptable: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading plan comptable: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts in code order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// ByClass returns all accounts of the given class.
func (s *Service) ByClass(class int) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Class() == class {
			result = append(result, a)
		}
	}
	return result
}

// Save writes the plan comptable to accounts/plan-comptable.csv.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "plan-comptable.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating plan comptable file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing plan comptable: %w", err)
	}
	return nil
}
