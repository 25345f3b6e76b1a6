package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ulazimo/kolagen/internal/domain"
)

const orderTextSeparator = ", "

// OrderTextLine одна позиция, восстановленная из текста заказа
type OrderTextLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

var orderTextLine = regexp.MustCompile(`^(.+) - (\d+)x \(([^()]+) ` + Currency + `\)$`)

// OrderText текст скрытого поля формы:
// "Kolagen Marine - 2x (8.580 RSD), Kolagen Beauty+ - 1x (4.990 RSD)"
func OrderText(lines []domain.SummaryLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s - %dx (%s)", l.Name, l.Quantity, FormatRSD(l.Total)))
	}
	return strings.Join(parts, orderTextSeparator)
}

// ParseOrderText обратная операция к OrderText
func ParseOrderText(text string) ([]OrderTextLine, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var out []OrderTextLine
	for _, part := range splitOrderText(text) {
		m := orderTextLine.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			return nil, fmt.Errorf("parse order line %q: unexpected format", part)
		}
		qty, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("parse quantity in %q: %w", part, err)
		}
		total, err := parseAmount(m[3])
		if err != nil {
			return nil, fmt.Errorf("parse total in %q: %w", part, err)
		}
		out = append(out, OrderTextLine{Name: m[1], Quantity: qty, LineTotal: total})
	}
	return out, nil
}

// splitOrderText режет только по разделителю после закрывающей скобки,
// чтобы запятая в названии товара не ломала разбор
func splitOrderText(text string) []string {
	var parts []string
	sep := ")" + orderTextSeparator
	for {
		i := strings.Index(text, sep)
		if i < 0 {
			return append(parts, text)
		}
		parts = append(parts, text[:i+1])
		text = text[i+len(sep):]
	}
}

func parseAmount(s string) (int64, error) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("no digits in %q", s)
	}
	return strconv.ParseInt(b.String(), 10, 64)
}
