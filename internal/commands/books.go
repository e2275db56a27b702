package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/liasse-dev/liasse/internal/config"
	"github.com/liasse-dev/liasse/internal/gitops"
	"github.com/liasse-dev/liasse/internal/ledger"
	"github.com/liasse-dev/liasse/internal/pcg"
)

// books bundles the services every command works with once a repository is
// open.
type books struct {
	root     string
	cfg      *config.Config
	accounts *pcg.Service
	ledger   *ledger.Service
}

// openBooks resolves dir, requires a liasse.yaml there, and loads the plan
// comptable and ledger services.
func openBooks(dir string) (*books, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfgPath := filepath.Join(root, config.FileName)
	if _, err := os.Stat(cfgPath); err != nil {
		return nil, fmt.Errorf("%s is not a books repository (no %s)", root, config.FileName)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	accounts, err := pcg.Load(root)
	if err != nil {
		return nil, err
	}

	return &books{
		root:     root,
		cfg:      cfg,
		accounts: accounts,
		ledger:   ledger.NewService(root, accounts),
	}, nil
}

// autoCommit commits the working tree when auto-commit is enabled, the books
// live in a git repository, and there is something to commit. Returns the
// short commit hash, or "" when no commit was made.
func (b *books) autoCommit(message string) (string, error) {
	if !b.cfg.Git.AutoCommit || !gitops.IsRepo(b.root) {
		return "", nil
	}
	changed, err := gitops.HasChanges(b.root)
	if err != nil {
		return "", err
	}
	if !changed {
		return "", nil
	}
	return gitops.CommitAll(b.root, message, b.cfg.Git.AuthorName, b.cfg.Git.AuthorEmail)
}
