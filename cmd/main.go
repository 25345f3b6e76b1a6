package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/ulazimo/kolagen/docs"
)

// @title Kolagen Pure API
// @version 1.0
// @description Cart, order form and testimonials API behind the Kolagen Pure landing page.
// @host localhost:9091
// @BasePath /api/v1
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "kolagen",
		Short:         "Kolagen Pure storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newQuoteCmd())
	return root
}
