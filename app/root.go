// Package app implements the randomstring command line.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/guardiancrow/randomstring/internal/config"
	"github.com/guardiancrow/randomstring/internal/logger"
	"github.com/guardiancrow/randomstring/internal/runner"
)

// ErrUsage is returned after the usage text was shown with -h.
var ErrUsage = errors.New("usage requested")

const usageHeader = `usage::
-l : string length
-n : number of generated strings
-o : output filename
-h : show usage

example::
randomstring -l 32 -n 8 -o outstring.txt

flags::
`

// newRootCmd builds the command. quick selects the single string mode used when
// the program was started without any argument.
func newRootCmd(out io.Writer, quick bool) (*cobra.Command, *bool) {
	usageShown := false

	cmd := &cobra.Command{
		Use:   "randomstring",
		Short: "randomstring generates random strings with several entropy sources",
		Long: `randomstring generates random strings over the base64 alphabet with four strategies
(xorshift, hardware, std-random, std-my-random) and writes them to stdout and a file.`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err //nolint:wrapcheck
			}

			if err = logger.Init(cfg.Log); err != nil {
				return err //nolint:wrapcheck
			}

			r, err := runner.New(cfg, cmd.OutOrStdout())
			if err != nil {
				return err //nolint:wrapcheck
			}

			if quick {
				return r.Quick() //nolint:wrapcheck
			}

			return r.Run(cmd.Context()) //nolint:wrapcheck
		},
	}

	cmd.SetOut(out)
	config.RegisterFlags(cmd.Flags())

	// own help flag so that -h ends with exit code 1
	cmd.Flags().BoolP("help", "h", false, "show usage")
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		usageShown = true
		_, _ = fmt.Fprint(c.OutOrStdout(), usageHeader+c.Flags().FlagUsages())
	})

	return cmd, &usageShown
}

// ExecuteArgs runs the command with args, writing results to out.
func ExecuteArgs(ctx context.Context, args []string, out io.Writer) error {
	if args == nil {
		args = []string{}
	}

	cmd, usageShown := newRootCmd(out, len(args) == 0)
	cmd.SetArgs(dropDanglingFlag(cmd.Flags(), args))

	if err := cmd.ExecuteContext(ctx); err != nil {
		return err //nolint:wrapcheck
	}

	if *usageShown {
		return ErrUsage
	}

	return nil
}

// dropDanglingFlag removes a trailing flag that expects a value but has none, such as
// "-n 1 -l". The flag keeps its default instead of failing the run.
func dropDanglingFlag(fs *pflag.FlagSet, args []string) []string {
	if len(args) == 0 {
		return args
	}

	last := args[len(args)-1]

	var f *pflag.Flag

	switch {
	case last == "--" || strings.Contains(last, "="):
		return args
	case strings.HasPrefix(last, "--"):
		f = fs.Lookup(last[2:])
	case len(last) == 2 && last[0] == '-':
		f = fs.ShorthandLookup(last[1:])
	}

	if f == nil || f.NoOptDefVal != "" {
		return args
	}

	return args[:len(args)-1]
}

// Execute runs the command with the process arguments.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := ExecuteArgs(ctx, os.Args[1:], os.Stdout)
	if err != nil && !errors.Is(err, ErrUsage) {
		log.Error().Err(err).Msg("randomstring failed")
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
	}

	return err
}
