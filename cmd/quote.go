package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ulazimo/kolagen/internal/domain"
	"github.com/ulazimo/kolagen/internal/pricing"
	"github.com/ulazimo/kolagen/internal/render"
	"github.com/ulazimo/kolagen/internal/repository"
)

func newQuoteCmd() *cobra.Command {
	var (
		items    []string
		product  string
		quantity int
	)
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a cart or a single-product selection",
		Example: `  kolagen quote --item pure=2 --item marine=1
  kolagen quote --product pure --quantity 3`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := repository.NewMemoryCatalog(repository.DefaultProducts)
			var sum domain.PriceSummary
			switch {
			case product != "" && len(items) > 0:
				return fmt.Errorf("use either --item or --product, not both")
			case product != "":
				sel, err := parseSelection(catalog, product, quantity)
				if err != nil {
					return err
				}
				sum = pricing.ComputeSelection(catalog, sel)
			case len(items) > 0:
				lines, err := parseItems(catalog, items)
				if err != nil {
					return err
				}
				sum = pricing.ComputeCart(catalog, lines)
			default:
				return fmt.Errorf("nothing to quote: pass --item or --product")
			}
			return writeQuote(cmd.OutOrStdout(), sum)
		},
	}
	cmd.Flags().StringArrayVar(&items, "item", nil, "cart line as id=quantity, repeatable")
	cmd.Flags().StringVar(&product, "product", "", "single product id")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "quantity for --product")
	return cmd
}

func parseSelection(catalog pricing.Catalog, id string, qty int) (domain.Selection, error) {
	if _, ok := catalog.Lookup(domain.ProductID(id)); !ok {
		return domain.Selection{}, fmt.Errorf("unknown product %q", id)
	}
	if qty < 1 || qty > pricing.MaxQuantity {
		return domain.Selection{}, fmt.Errorf("quantity must be 1..%d, got %d", pricing.MaxQuantity, qty)
	}
	return domain.Selection{ProductID: domain.ProductID(id), Quantity: qty}, nil
}

// parseItems повторяющиеся id складываются
func parseItems(catalog pricing.Catalog, items []string) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	index := make(map[domain.ProductID]int)
	for _, raw := range items {
		id, q, ok := strings.Cut(raw, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --item %q, want id=quantity", raw)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(q))
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", raw, err)
		}
		sel, err := parseSelection(catalog, strings.TrimSpace(id), qty)
		if err != nil {
			return nil, err
		}
		if i, seen := index[sel.ProductID]; seen {
			lines[i].Quantity = min(lines[i].Quantity+qty, pricing.MaxQuantity)
			continue
		}
		index[sel.ProductID] = len(lines)
		lines = append(lines, domain.CartLine{ProductID: sel.ProductID, Quantity: sel.Quantity})
	}
	return lines, nil
}

func writeQuote(w io.Writer, sum domain.PriceSummary) error {
	table := tablewriter.NewWriter(w)
	table.Header("Proizvod", "Količina", "Cena", "Ukupno")
	for _, l := range sum.Lines {
		if err := table.Append(l.Name, strconv.Itoa(l.Quantity), render.FormatRSD(l.UnitPrice), render.FormatRSD(l.Total)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if sum.Discount > 0 {
		fmt.Fprintf(w, "Popust:  -%s\n", render.FormatRSD(sum.Discount))
	}
	fmt.Fprintf(w, "Dostava: %s\n", render.ShippingLabel(sum, pricing.ShippingCost))
	fmt.Fprintf(w, "Ukupno:  %s\n", render.FormatRSD(sum.Total))
	if text := render.OrderText(sum.Lines); text != "" {
		fmt.Fprintf(w, "Stavke:  %s\n", text)
	}
	return nil
}
