package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a monetary amount in cents. Roster arithmetic stays exact in
// integer cents; String decides presentation.
type Money int64

var enPrinter = message.NewPrinter(language.English)

// ParseMoney reads an amount as it comes out of a spreadsheet cell:
// "1000", "1,234.50", "$950.5", "-12.34". More than two decimal places is an
// error rather than a silent rounding.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) > 2 {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	for len(fracPart) < 2 {
		fracPart += "0"
	}
	if intPart == "" {
		intPart = "0"
	}
	if !digits(intPart) || !digits(fracPart) {
		return 0, fmt.Errorf("bad amount %q", s)
	}

	units, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q", s)
	}
	frac, err := strconv.ParseInt(fracPart, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad amount %q", s)
	}

	cents := units*100 + frac
	if neg {
		cents = -cents
	}
	return Money(cents), nil
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String renders the amount with a fixed "$" prefix, thousands grouping and
// exactly two fraction digits: "$1,234.50", "-$550.00".
func (m Money) String() string {
	cents := int64(m)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%s.%02d", sign, enPrinter.Sprintf("%d", cents/100), cents%100)
}
