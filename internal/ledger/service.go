package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/liasse-dev/liasse/internal/id"
	"github.com/liasse-dev/liasse/internal/model"
)

// Service provides business logic over the month-partitioned journal files.
type Service struct {
	booksRoot string
	accounts  AccountChecker
}

// NewService creates a ledger Service.
func NewService(booksRoot string, accounts AccountChecker) *Service {
	return &Service{booksRoot: booksRoot, accounts: accounts}
}

// PieceLine is one side of a piece to be posted.
type PieceLine struct {
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
}

// AddPieceParams holds parameters for posting one balanced piece.
type AddPieceParams struct {
	Date        time.Time
	JournalCode string
	Label       string
	Reference   string
	Lines       []PieceLine
}

// AddPiece posts a balanced piece, validates the whole month with it
// included, and appends it to the month's journal.csv. Returns the piece
// number.
func (s *Service) AddPiece(params AddPieceParams) (string, error) {
	if len(params.Lines) < 2 {
		return "", fmt.Errorf("a piece needs at least two lines, got %d", len(params.Lines))
	}

	year := params.Date.Year()
	month := int(params.Date.Month())

	seq, err := s.NextPieceSeq(year, month)
	if err != nil {
		return "", err
	}
	pieceNumber := id.FormatPieceNumber(year, month, seq)

	newLines := make([]model.LedgerLine, 0, len(params.Lines))
	for i, pl := range params.Lines {
		newLines = append(newLines, model.LedgerLine{
			ID:          id.FormatLineID(pieceNumber, i),
			Date:        params.Date,
			JournalCode: params.JournalCode,
			AccountCode: pl.AccountCode,
			Label:       params.Label,
			Debit:       pl.Debit,
			Credit:      pl.Credit,
			Reference:   params.Reference,
		})
	}

	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return "", err
	}

	all := append(existing, newLines...)
	if verrs := ValidateLines(all, s.accounts, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	journalPath := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(journalPath), 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendLines(f, newLines); err != nil {
		return "", fmt.Errorf("appending lines: %w", err)
	}

	return pieceNumber, nil
}

// AddSimpleParams holds parameters for the common two-line piece.
type AddSimpleParams struct {
	Date          time.Time
	JournalCode   string
	Label         string
	DebitAccount  string
	CreditAccount string
	Amount        decimal.Decimal
	Reference     string
}

// AddSimple posts a two-line piece (one debit, one credit). Returns the
// piece number.
func (s *Service) AddSimple(params AddSimpleParams) (string, error) {
	return s.AddPiece(AddPieceParams{
		Date:        params.Date,
		JournalCode: params.JournalCode,
		Label:       params.Label,
		Reference:   params.Reference,
		Lines: []PieceLine{
			{AccountCode: params.DebitAccount, Debit: params.Amount},
			{AccountCode: params.CreditAccount, Credit: params.Amount},
		},
	})
}

// ReadMonth reads all lines for a given year/month. A missing file is an
// empty month, not an error.
func (s *Service) ReadMonth(year, month int) ([]model.LedgerLine, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	lines, err := ReadLines(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return lines, nil
}

var monthDirPattern = regexp.MustCompile(`^\d{4}/\d{2}$`)

// ReadAll reads every journal file under the books root in chronological
// order and returns the flat line slice statements are computed from.
func (s *Service) ReadAll() ([]model.LedgerLine, error) {
	var months []string
	err := filepath.WalkDir(s.booksRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != "journal.csv" {
			return nil
		}
		rel, err := filepath.Rel(s.booksRoot, filepath.Dir(path))
		if err != nil {
			return err
		}
		if monthDirPattern.MatchString(filepath.ToSlash(rel)) {
			months = append(months, path)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning journals: %w", err)
	}
	sort.Strings(months)

	var all []model.LedgerLine
	for _, path := range months {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening journal %s: %w", path, err)
		}
		lines, err := ReadLines(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading journal %s: %w", path, err)
		}
		all = append(all, lines...)
	}
	return all, nil
}

// NextPieceSeq returns the next available sequence number for a month.
func (s *Service) NextPieceSeq(year, month int) (int, error) {
	lines, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, line := range lines {
		_, _, seq, err := id.ParsePieceNumber(line.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.booksRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
