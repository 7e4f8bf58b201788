package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"flowworks-backend/internal/auth"
	"flowworks-backend/internal/casestudies"
	"flowworks-backend/internal/services"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "sitectl",
		Short:        "Operator tooling for the FlowWorks site backend",
		SilenceUsage: true,
	}
	root.AddCommand(newCheckCmd(), newMatrixCmd(), newHashPasswordCmd())
	return root
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the case study and service catalogs",
		Long: `Validates the built-in content catalogs the API serves.

Case studies must have slug ids, concrete industry and function categories,
known result categories and related cases that exist. Every case study a
service links to must exist.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cases := casestudies.Catalog()
			offerings := services.Catalog()

			err := errors.Join(
				casestudies.ValidateCatalog(cases),
				services.ValidateCatalog(offerings, casestudies.Known(cases)),
			)
			if err != nil {
				return fmt.Errorf("catalog invalid:\n%w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d case studies, %d services\n", len(cases), len(offerings))
			return nil
		},
	}
}

func newMatrixCmd() *cobra.Command {
	var showIDs bool
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print case study coverage by industry and function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeMatrix(cmd.OutOrStdout(), casestudies.BuildMatrix(casestudies.Catalog()), showIDs)
		},
	}
	cmd.Flags().BoolVar(&showIDs, "ids", false, "List case ids instead of counts")
	return cmd
}

func writeMatrix(out io.Writer, m casestudies.Matrix, showIDs bool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	header := []string{"industry"}
	for _, fn := range m.Functions {
		header = append(header, string(fn))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, ind := range m.Industries {
		row := []string{string(ind)}
		for _, cell := range m.Cells[i] {
			switch {
			case showIDs && len(cell.CaseIDs) > 0:
				row = append(row, strings.Join(cell.CaseIDs, ","))
			case showIDs:
				row = append(row, "-")
			default:
				row = append(row, strconv.Itoa(len(cell.CaseIDs)))
			}
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// hashEnv lets BCRYPT_COST set the default cost, matching the API config.
type hashEnv struct {
	Cost int `env:"BCRYPT_COST" envDefault:"12"`
}

func newHashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Long: `Prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.

The password is read from the first argument, or from the first line of
stdin when no argument is given. It must be at least 12 characters. The
cost comes from --cost, then BCRYPT_COST, then 12.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}

			if !cmd.Flags().Changed("cost") {
				var defaults hashEnv
				if err := env.Parse(&defaults); err != nil {
					return fmt.Errorf("parse env: %w", err)
				}
				cost = defaults.Cost
			}

			hash, err := auth.HashPassword(password, cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", auth.DefaultCost, "bcrypt cost")
	return cmd
}
