package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/liasse-dev/liasse/internal/auditlog"
	"github.com/liasse-dev/liasse/internal/ledger"
)

func newEntryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Work with journal entries",
	}
	cmd.AddCommand(newEntryAddCommand())
	return cmd
}

func newEntryAddCommand() *cobra.Command {
	var (
		dir           string
		dateStr       string
		journalCode   string
		label         string
		debitAccount  string
		creditAccount string
		amountStr     string
		reference     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Post a two-line piece to the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("parsing --date %q: %w", dateStr, err)
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing --amount %q: %w", amountStr, err)
			}
			if !amount.IsPositive() {
				return fmt.Errorf("--amount must be positive, got %s", amount)
			}

			pieceNumber, err := b.ledger.AddSimple(ledger.AddSimpleParams{
				Date:          date,
				JournalCode:   journalCode,
				Label:         label,
				DebitAccount:  debitAccount,
				CreditAccount: creditAccount,
				Amount:        amount,
				Reference:     reference,
			})
			if err != nil {
				return err
			}

			commitHash, err := b.autoCommit(fmt.Sprintf("journal: %s %s", pieceNumber, label))
			if err != nil {
				return fmt.Errorf("committing piece: %w", err)
			}

			logErr := auditlog.Append(b.root, []auditlog.Entry{{
				Timestamp:  time.Now().UTC(),
				Command:    "entry add",
				Details:    fmt.Sprintf("%s %s (%s / %s)", label, amount.StringFixed(2), debitAccount, creditAccount),
				PieceID:    pieceNumber,
				CommitHash: commitHash,
			}})
			if logErr != nil {
				return fmt.Errorf("writing audit log: %w", logErr)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Posted %s\n", pieceNumber)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books repository directory")
	cmd.Flags().StringVar(&dateStr, "date", "", "piece date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&journalCode, "journal", "OD", "journal code (VE, AC, BQ, OD)")
	cmd.Flags().StringVar(&label, "label", "", "piece label (required)")
	cmd.Flags().StringVar(&debitAccount, "debit", "", "debit account code (required)")
	cmd.Flags().StringVar(&creditAccount, "credit", "", "credit account code (required)")
	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&reference, "ref", "", "external reference")
	for _, f := range []string{"date", "label", "debit", "credit", "amount"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}
