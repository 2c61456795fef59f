package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ajjensen13/go-constmap/internal/declaration"
)

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print a declaration as YAML",
		Long: `Print the declaration go-constmap would generate from, in the YAML format
accepted by --yaml. This can be used to move a declaration out of Go source,
or to check which variable go-constmap picks up.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadDeclaration(cmd)
			if err != nil {
				return err
			}

			if err := d.Validate(); err != nil {
				return err
			}

			return declaration.WriteYAML(cmd.OutOrStdout(), d)
		},
		Example: "go-constmap describe --input example.go --pkg example --decl fooDecl",
	}
}
