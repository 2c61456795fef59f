package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ajjensen13/go-constmap/internal/declaration"
	"github.com/ajjensen13/go-constmap/internal/generator"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newRootCmd builds the base command when called without any subcommands
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "go-constmap",
		Short: "Generate enumerations that map variants to constant values",
		Long: `Generate enumerations that map variants to constant values.

go-constmap is designed to be called by go generate. It reads a constmap.Decl
variable (or a YAML declaration file) and generates a type with one variant per
entry, plus ValueList, ID and Get methods that look values up by ordinal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
		Example: `go-constmap --input example.go --pkg example --decl fooDecl --type Foo
go-constmap --yaml color.yaml --pkg example`,
	}

	fs := rootCmd.PersistentFlags()
	fs.StringP("input", "i", "", "input file to scan. If not specified, input defaults to the value of $GOFILE, which is set by go generate")
	fs.StringP("pkg", "p", "", "package name for the generated file. If not specified, pkg defaults to the value of $GOPACKAGE which is set by go generate")
	fs.StringP("decl", "d", "", "name of the constmap.Decl variable to read. If not specified, the first variable declared after $GOLINE in $GOFILE is used")
	fs.StringP("type", "t", "", "name of the generated type. If not specified, it is derived from the declaration variable by removing its Decl suffix")
	fs.StringP("yaml", "y", "", "read the declaration from this YAML file instead of Go source")
	fs.StringP("receiver", "r", "", "receiver variable name of the generated methods. By default, the first letter of the type if used")
	fs.IntP("line", "l", 0, "Use this parameter to specify the line to search for declarations from if a declaration name is not specified. If not specified, line defaults to the value of $GOLINE which is set by go generate.")
	_ = fs.MarkHidden("line")

	lfs := rootCmd.Flags()
	lfs.StringP("output", "o", "", "output file to create. If not specified, output defaults to the value of <type>_constmap.go. As special cases, you can specify <STDOUT> or <STDERR> to output to standard output or standard error")
	lfs.BoolP("verbose", "v", false, "print a summary of the generated file to standard error")

	rootCmd.AddCommand(newDescribeCmd())
	return rootCmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, pkgName, err := loadDeclaration(cmd)
	if err != nil {
		return err
	}

	if pkgName == "" {
		return errors.New("failed to determine package name")
	}

	if err := d.Validate(); err != nil {
		return err
	}

	f, err := generator.Generate(pkgName, d)
	if err != nil {
		return err
	}
	f.HeaderComment(fmt.Sprintf("Code generated by %q; DO NOT EDIT.", strings.Join(os.Args, " ")))

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return fmt.Errorf("rendering %s: %w", d.TypeName, err)
	}

	outputFileName, ok := resolveParameterValue(cmd.Flag("output"), "")
	if !ok {
		outputFileName = fmt.Sprintf("%s_constmap.go", generator.UnexportedName(d.TypeName))
	}

	out, cleanup, err := openOutputFile(outputFileName)
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := io.Copy(out, &buf); err != nil {
		return err
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "go-constmap: wrote %s: %s with %d variants of %s\n", outputFileName, d.TypeName, len(d.Entries), d.Element)
	}

	return nil
}

// loadDeclaration reads the declaration selected by cmd's flags, falling
// back to the environment set by go generate. The returned package name is
// empty if it could not be determined.
func loadDeclaration(cmd *cobra.Command) (*declaration.Declaration, string, error) {
	pkgName, _ := resolveParameterValue(cmd.Flag("pkg"), "GOPACKAGE")
	typeName, _ := resolveParameterValue(cmd.Flag("type"), "")

	var d *declaration.Declaration
	if yamlFileName, ok := resolveParameterValue(cmd.Flag("yaml"), ""); ok && yamlFileName != "" {
		var err error
		d, err = readYAMLFile(yamlFileName)
		if err != nil {
			return nil, "", err
		}
	} else {
		inputFileName, ok := resolveParameterValue(cmd.Flag("input"), "GOFILE")
		if !ok {
			return nil, "", errors.New("failed to determine input file")
		}

		if pkgName == "" {
			return nil, "", errors.New("failed to determine package name")
		}

		pkg, err := loadPackage(pkgName, inputFileName)
		if err != nil {
			return nil, "", err
		}

		var line int
		lineStr, _ := resolveParameterValue(cmd.Flag("line"), "GOLINE")
		if lineStr != "" {
			_, err = fmt.Sscan(lineStr, &line)
			if err != nil {
				return nil, "", fmt.Errorf("failed to determine source line: %w", err)
			}
		}

		declName, _ := resolveParameterValue(cmd.Flag("decl"), "")
		v, err := findDeclVar(pkg, declName, inputFileName, line)
		if err != nil {
			return nil, "", err
		}

		d, err = declarationFromVar(pkg, v)
		if err != nil {
			return nil, "", err
		}

		if d.TypeName == "" && typeName == "" {
			return nil, "", fmt.Errorf("cannot derive a type name from %q; use --type", v.Name())
		}
	}

	if typeName != "" {
		d.TypeName = typeName
	}

	if receiver, _ := resolveParameterValue(cmd.Flag("receiver"), ""); receiver != "" {
		d.Receiver = receiver
	}

	return d, pkgName, nil
}

func readYAMLFile(name string) (*declaration.Declaration, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	d, err := declaration.ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

// resolveParameterValue returns the parameter value from f if it was specified
// by the user. Otherwise, if env is not empty, it looks up the value from the
// environment variable named env.
func resolveParameterValue(f *pflag.Flag, env string) (string, bool) {
	if f.Changed {
		return f.Value.String(), true
	}

	if env != "" {
		return os.LookupEnv(env)
	}

	return f.DefValue, false
}

// openOutputFile opens/creates the file to write the output to.
// The returned func is the function to use to "close" the file.
func openOutputFile(name string) (*os.File, func(), error) {
	switch name {
	case "<STDOUT>":
		return os.Stdout, func() { _ = os.Stdout.Sync() }, nil
	case "<STDERR>":
		return os.Stderr, func() { _ = os.Stderr.Sync() }, nil
	default:
		ret, err := os.Create(name)
		if err != nil {
			return nil, nil, err
		}
		return ret, func() { _ = ret.Close() }, nil
	}
}
