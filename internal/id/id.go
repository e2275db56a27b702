package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatPieceNumber returns a piece number like "2025-06-001".
func FormatPieceNumber(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatLineID returns a line ID like "2025-06-001a" (line 0='a', 1='b', etc.).
func FormatLineID(pieceNumber string, line int) string {
	return pieceNumber + string(rune('a'+line))
}

// ParsePieceNumber parses "2025-06-001" (or a full line ID) into year, month, seq.
func ParsePieceNumber(number string) (year, month, seq int, err error) {
	// Strip any line suffix (trailing lowercase letters).
	base := PieceNumber(number)

	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid piece number format: %q", number)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in piece number %q: %w", number, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in piece number %q: %w", number, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in piece number %q: %w", number, err)
	}

	return year, month, seq, nil
}

// PieceNumber strips the line suffix from a line ID.
// "2025-06-001a" -> "2025-06-001"
func PieceNumber(lineID string) string {
	if len(lineID) == 0 {
		return ""
	}
	i := len(lineID)
	for i > 0 && lineID[i-1] >= 'a' && lineID[i-1] <= 'z' {
		i--
	}
	return lineID[:i]
}
