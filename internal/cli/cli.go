// Package cli builds the pictool command line from the transform registry.
//
// Every registered transform becomes a subcommand taking an input path, an
// optional output path, and one --name=value flag per declared parameter:
//
//	pictool flip --vertical=True photo.png flipped.png
//	pictool blur --radius=3 photo.png blurred.png
//	pictool display tiny.png
//
// Flag values are converted the same way for every command (see
// plugin.ParseValue), and each transform checks the resulting type itself,
// so --radius=abc is reported as an invalid argument rather than a flag
// parsing failure.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ironsheep/pictool/internal/imaging"
	"github.com/ironsheep/pictool/internal/plugin"
	"github.com/ironsheep/pictool/internal/runner"
	"github.com/ironsheep/pictool/internal/server"
)

// Exit codes returned by Execute.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// optionValue is a pflag.Value that keeps the raw flag text so the
// registry's conversion rules, not pflag's, decide the value's type.
type optionValue struct {
	param plugin.Param
	raw   string
	set   bool
}

var _ pflag.Value = (*optionValue)(nil)

func (v *optionValue) String() string {
	if !v.set {
		return fmt.Sprint(v.param.Default)
	}
	return v.raw
}

func (v *optionValue) Set(s string) error {
	v.raw = s
	v.set = true
	return nil
}

func (v *optionValue) Type() string {
	return v.param.Kind.String()
}

// NewRootCommand returns the pictool command tree.
func NewRootCommand(r *runner.Runner, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "pictool <command> [options] input [output]",
		Short:         "Apply a simple transform to an image",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			msg := fmt.Sprintf("unrecognized command %q", args[0])
			if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
				msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
			}
			return fmt.Errorf("%w: %s", plugin.ErrConfiguration, msg)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", plugin.ErrConfiguration, err)
	})

	for _, spec := range r.Registry().Specs() {
		root.AddCommand(newTransformCommand(r, spec))
	}
	root.AddCommand(newListCommand(r.Registry()), newInfoCommand(r), newServeCommand(r, version))
	return root
}

// boolFlagHelp is appended to the help of commands with boolean options.
// A bare boolean flag takes no value, so a following "False" would be read
// as the input path.
const boolFlagHelp = `Boolean options are set with --name=value, as in --%[1]s=False.
A bare --%[1]s means --%[1]s=True.`

func newTransformCommand(r *runner.Runner, spec *plugin.Spec) *cobra.Command {
	values := make([]*optionValue, 0, len(spec.Params))

	cmd := &cobra.Command{
		Use:   spec.Name + " input [output]",
		Short: spec.Description,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return fmt.Errorf("%w: usage: pictool %s", plugin.ErrConfiguration, spec.Usage())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := plugin.Options{}
			for _, v := range values {
				if v.set {
					opts[v.param.Name] = plugin.ParseValue(v.raw)
				}
			}

			inv := runner.Invocation{
				Command: spec.Name,
				Options: opts,
				Input:   args[0],
				Out:     cmd.OutOrStdout(),
			}
			if len(args) == 2 {
				inv.Output = args[1]
			}

			res, err := r.Run(cmd.Context(), inv)
			if err != nil {
				return err
			}
			if res.Modified && !res.Saved {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s modified %q; give an output path to save it\n", spec.Name, inv.Input)
			}
			return nil
		},
	}

	for _, p := range spec.Params {
		v := &optionValue{param: p}
		values = append(values, v)
		flag := cmd.Flags().VarPF(v, p.Name, "", p.Description)
		if p.Kind == plugin.Bool {
			flag.NoOptDefVal = "True"
			if cmd.Long == "" {
				cmd.Long = spec.Description + "\n\n" + fmt.Sprintf(boolFlagHelp, p.Name)
			}
		}
	}
	return cmd
}

func newListCommand(reg *plugin.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available transforms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, spec := range reg.Specs() {
				fmt.Fprintf(tw, "%s\t%s\n", spec.Usage(), spec.Description)
			}
			return tw.Flush()
		},
	}
}

func newInfoCommand(r *runner.Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "info input",
		Short: "Print image metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := imaging.LoadImageInfo(r.Cache(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}

func newServeCommand(r *runner.Runner, version string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the transforms as MCP tools over stdin/stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.New(r, version).Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// Execute runs the command line in args (without the program name) and
// returns the process exit code. Errors are printed to stderr as
// "error: ...".
func Execute(ctx context.Context, r *runner.Runner, version string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := NewRootCommand(r, version)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	if errors.Is(err, plugin.ErrConfiguration) {
		return ExitUsage
	}
	return ExitFailed
}
