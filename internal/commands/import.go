package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/liasse-dev/liasse/internal/auditlog"
	"github.com/liasse-dev/liasse/internal/importer"
	"github.com/liasse-dev/liasse/internal/ledger"
	"github.com/liasse-dev/liasse/internal/model"
)

func newImportCommand() *cobra.Command {
	var (
		dir             string
		format          string
		bankAccount     string
		suspenseAccount string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank statements from the import directory",
		Long: `Import parses every statement file in import/, posts one piece per
movement against the suspense account, and moves the file to
import/processed/. Suspense balances are reclassified later with entry add.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			// Configured bank accounts override the flag defaults.
			if len(b.cfg.BankAccounts) > 0 {
				primary := b.cfg.BankAccounts[0]
				if !cmd.Flags().Changed("account") && primary.AccountCode != "" {
					bankAccount = primary.AccountCode
				}
				if !cmd.Flags().Changed("suspense") && primary.SuspenseAccount != "" {
					suspenseAccount = primary.SuspenseAccount
				}
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown statement format %q", format)
			}

			files, err := importer.Scan(b.root)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to import")
				return nil
			}

			for _, file := range files {
				posted, err := importStatement(b, parser, file, bankAccount, suspenseAccount)
				if err != nil {
					return fmt.Errorf("importing %s: %w", file.Name, err)
				}

				if err := importer.MarkProcessed(b.root, file.Name); err != nil {
					return err
				}

				commitHash, err := b.autoCommit(fmt.Sprintf("import: %s (%d mouvements)", file.Name, posted))
				if err != nil {
					return fmt.Errorf("committing import: %w", err)
				}

				if err := auditlog.Append(b.root, []auditlog.Entry{{
					Timestamp:  time.Now().UTC(),
					Command:    "import",
					Details:    fmt.Sprintf("%s: %d mouvements", file.Name, posted),
					CommitHash: commitHash,
				}}); err != nil {
					return fmt.Errorf("writing audit log: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d movements\n", file.Name, posted)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books repository directory")
	cmd.Flags().StringVar(&format, "format", "releve", "statement format")
	cmd.Flags().StringVar(&bankAccount, "account", "512000", "treasury account code")
	cmd.Flags().StringVar(&suspenseAccount, "suspense", "471000", "suspense account code")

	return cmd
}

// importStatement posts one suspense piece per bank movement: money out
// credits the bank and debits the suspense account, money in the reverse.
func importStatement(b *books, parser importer.Parser, file importer.FileInfo, bankAccount, suspenseAccount string) (int, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	txns, err := parser.Parse(f)
	if err != nil {
		return 0, err
	}

	for _, txn := range txns {
		if _, err := b.ledger.AddPiece(suspensePiece(txn, bankAccount, suspenseAccount)); err != nil {
			return 0, fmt.Errorf("posting %s: %w", txn.Reference, err)
		}
	}
	return len(txns), nil
}

func suspensePiece(txn model.BankTransaction, bankAccount, suspenseAccount string) ledger.AddPieceParams {
	amount := txn.Amount.Abs()
	lines := []ledger.PieceLine{
		{AccountCode: bankAccount, Debit: amount},
		{AccountCode: suspenseAccount, Credit: amount},
	}
	if txn.Amount.IsNegative() {
		lines = []ledger.PieceLine{
			{AccountCode: suspenseAccount, Debit: amount},
			{AccountCode: bankAccount, Credit: amount},
		}
	}
	return ledger.AddPieceParams{
		Date:        txn.Date,
		JournalCode: "BQ",
		Label:       txn.Label,
		Reference:   txn.Reference,
		Lines:       lines,
	}
}
