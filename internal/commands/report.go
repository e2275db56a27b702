package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/liasse-dev/liasse/internal/model"
	"github.com/liasse-dev/liasse/internal/statements"
)

func newReportCommand() *cobra.Command {
	var (
		dir        string
		closingStr string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:       "report [balance|bilan|resultat|tresorerie|capitaux|immobilisations]",
		Short:     "Compute a financial statement from the journal",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"balance", "bilan", "resultat", "tresorerie", "capitaux", "immobilisations"},
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := openBooks(dir)
			if err != nil {
				return err
			}

			closing, err := time.Parse("2006-01-02", closingStr)
			if err != nil {
				return fmt.Errorf("parsing --closing %q: %w", closingStr, err)
			}

			lines, err := b.ledger.ReadAll()
			if err != nil {
				return err
			}

			return runReport(cmd, args[0], b, lines, closing, asJSON)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "books repository directory")
	cmd.Flags().StringVar(&closingStr, "closing", "", "closing date YYYY-MM-DD (required)")
	_ = cmd.MarkFlagRequired("closing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of text")

	return cmd
}

func runReport(cmd *cobra.Command, statement string, b *books, lines []model.LedgerLine, closing time.Time, asJSON bool) error {
	accounts := b.accounts.All()
	out := cmd.OutOrStdout()

	switch statement {
	case "balance":
		tb := statements.BuildComparativeTrialBalance(accounts, lines, closing)
		reportWarnings(cmd.ErrOrStderr(), tb.Warnings)
		if asJSON {
			return writeJSON(out, tb)
		}
		return renderTrialBalance(out, tb)

	case "bilan":
		sheet := statements.BuildComparativeBalanceSheet(accounts, lines, closing)
		reportWarnings(cmd.ErrOrStderr(), sheet.Warnings)
		if asJSON {
			return writeJSON(out, sheet)
		}
		return renderBalanceSheet(out, sheet)

	case "resultat":
		stmt := statements.BuildComparativeIncomeStatement(accounts, lines, closing)
		reportWarnings(cmd.ErrOrStderr(), stmt.Warnings)
		if asJSON {
			return writeJSON(out, stmt)
		}
		return renderIncomeStatement(out, stmt)

	case "tresorerie":
		sheet := statements.BuildComparativeBalanceSheet(accounts, lines, closing)
		income := statements.BuildComparativeIncomeStatement(accounts, lines, closing)
		cf := statements.DeriveCashFlow(sheet, income)
		reportWarnings(cmd.ErrOrStderr(), cf.Warnings)
		if asJSON {
			return writeJSON(out, cf)
		}
		return renderCashFlow(out, cf)

	case "capitaux":
		table := statements.BuildEquityVariation(accounts, lines, closing)
		reportWarnings(cmd.ErrOrStderr(), table.Warnings)
		if asJSON {
			return writeJSON(out, table)
		}
		return renderEquityVariation(out, table)

	case "immobilisations":
		schedule := statements.BuildFixedAssetSchedule(lines, closing)
		if asJSON {
			return writeJSON(out, schedule)
		}
		return renderFixedAssets(out, schedule)

	default:
		return fmt.Errorf("unknown statement %q", statement)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func reportWarnings(w io.Writer, warnings []statements.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "warning [%s]: %s\n", warning.Code, warning.Message)
	}
}

func renderTrialBalance(w io.Writer, tb statements.ComparativeTrialBalance) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Compte\tLibellé\tSolde N\tSolde N-1")
	for _, row := range tb.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.AccountCode, row.Label,
			row.BalanceN.StringFixed(2), row.BalanceN1.StringFixed(2))
	}
	fmt.Fprintf(tw, "\tTotal\t%s\t%s\n", tb.TotalN.StringFixed(2), tb.TotalN1.StringFixed(2))
	return tw.Flush()
}

func renderBalanceSheet(w io.Writer, sheet statements.ComparativeBalanceSheet) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	renderSide := func(title string, side statements.ComparativeSheetSide) {
		fmt.Fprintf(tw, "%s\tNet N\tNet N-1\n", title)
		for _, mass := range side.Masses {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", mass.Label,
				mass.Total.N.Net.StringFixed(2), mass.Total.N1.Net.StringFixed(2))
			for _, sub := range mass.SubMasses {
				fmt.Fprintf(tw, "  %s\t%s\t%s\n", sub.Label,
					sub.Total.N.Net.StringFixed(2), sub.Total.N1.Net.StringFixed(2))
			}
		}
		fmt.Fprintf(tw, "TOTAL %s\t%s\t%s\n", title,
			side.Total.N.Net.StringFixed(2), side.Total.N1.Net.StringFixed(2))
	}

	renderSide("ACTIF", sheet.Actif)
	fmt.Fprintln(tw)
	renderSide("PASSIF", sheet.Passif)
	return tw.Flush()
}

func renderIncomeStatement(w io.Writer, stmt statements.ComparativeIncomeStatement) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Compte de résultat\tN\tN-1")
	for _, sec := range stmt.Sections {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", sec.Label,
			sec.TotalN.StringFixed(2), sec.TotalN1.StringFixed(2))
		for _, line := range sec.Lines {
			if line.AmountN.IsZero() && line.AmountN1.IsZero() {
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", line.Label,
				line.AmountN.StringFixed(2), line.AmountN1.StringFixed(2))
		}
	}
	fmt.Fprintf(tw, "Résultat d'exploitation\t%s\t%s\n",
		stmt.OperatingResultN.StringFixed(2), stmt.OperatingResultN1.StringFixed(2))
	fmt.Fprintf(tw, "Résultat financier\t%s\t%s\n",
		stmt.FinancialResultN.StringFixed(2), stmt.FinancialResultN1.StringFixed(2))
	fmt.Fprintf(tw, "Résultat net\t%s\t%s\n",
		stmt.NetResultN.StringFixed(2), stmt.NetResultN1.StringFixed(2))
	return tw.Flush()
}

func renderCashFlow(w io.Writer, cf statements.CashFlowStatement) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	rows := []struct {
		label  string
		amount string
	}{
		{"Résultat net", cf.NetIncome.StringFixed(2)},
		{"Dotations aux amortissements", cf.DepreciationAddback.StringFixed(2)},
		{"Variation des stocks", cf.InventoryChange.StringFixed(2)},
		{"Variation des créances", cf.ReceivablesChange.StringFixed(2)},
		{"Variation des dettes d'exploitation", cf.PayablesChange.StringFixed(2)},
		{"Flux de trésorerie d'exploitation", cf.OperatingCashFlow.StringFixed(2)},
		{"Investissements", cf.CapitalExpenditure.StringFixed(2)},
		{"Flux de trésorerie d'investissement", cf.InvestingCashFlow.StringFixed(2)},
		{"Variation des capitaux propres", cf.EquityChange.StringFixed(2)},
		{"Variation des dettes financières", cf.FinancialDebtChange.StringFixed(2)},
		{"Flux de trésorerie de financement", cf.FinancingCashFlow.StringFixed(2)},
		{"Variation de trésorerie", cf.NetChangeInCash.StringFixed(2)},
		{"Trésorerie d'ouverture", cf.OpeningCash.StringFixed(2)},
		{"Trésorerie de clôture", cf.ClosingCash.StringFixed(2)},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.label, row.amount)
	}
	return tw.Flush()
}

func renderEquityVariation(w io.Writer, table statements.EquityVariationTable) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tCapital\tRéserves\tRésultat\tTotal")
	for _, row := range table.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", row.Label,
			row.Capital.StringFixed(2), row.Reserves.StringFixed(2),
			row.Result.StringFixed(2), row.Total.StringFixed(2))
	}
	return tw.Flush()
}

func renderFixedAssets(w io.Writer, schedule statements.FixedAssetSchedule) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Valeur brute d'ouverture\t%s\n", schedule.OpeningGross.StringFixed(2))
	fmt.Fprintf(tw, "Acquisitions\t%s\n", schedule.Additions.StringFixed(2))
	fmt.Fprintf(tw, "Cessions\t%s\n", schedule.Disposals.StringFixed(2))
	fmt.Fprintf(tw, "Valeur brute de clôture\t%s\n", schedule.ClosingGross.StringFixed(2))
	return tw.Flush()
}
