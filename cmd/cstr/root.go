package main

import (
	"fmt"
	"io"
	"strconv"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/shapestone/shape-cstr/pkg/cstr"
)

// cli carries the resolved configuration to the subcommands.
type cli struct {
	cfg Config
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: DefaultConfig()}

	rootCmd := &cobra.Command{
		Use:           "cstr",
		Short:         "C string primitives over byte buffers",
		Long:          `cstr runs the string.h style primitives of shape-cstr on command line arguments`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.resolve(cmd)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./"+defaultConfigFile+" if present)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("escape", false, `interpret Go escape sequences such as \x00 in arguments`)

	rootCmd.AddCommand(
		newLenCmd(c),
		newCmpCmd(c),
		newFindCmd(c),
		newSearchCmd(c),
		newSpanCmd(c),
		newTokCmd(c),
		newFillCmd(c),
		newMoveCmd(c),
	)
	return rootCmd
}

// resolve loads the config file and lets explicitly set flags override it.
func (c *cli) resolve(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}

	if flags.Changed("color") {
		if cfg.Color, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if flags.Changed("escape") {
		if cfg.Escape, err = flags.GetBool("escape"); err != nil {
			return fmt.Errorf("failed to get escape flag: %w", err)
		}
	}

	c.cfg = cfg
	applyColorMode(cfg.Color)
	return nil
}

// arg converts a command line argument into a byte buffer, decoding escape
// sequences when enabled.
func (c *cli) arg(s string) ([]byte, error) {
	if !c.cfg.Escape {
		return []byte(s), nil
	}
	u, err := strconv.Unquote(`"` + s + `"`)
	if err != nil {
		return nil, fmt.Errorf("invalid escape sequence in %q", s)
	}
	return []byte(u), nil
}

// args converts every argument with arg.
func (c *cli) args(in []string) ([][]byte, error) {
	out := make([][]byte, len(in))
	for i, s := range in {
		b, err := c.arg(s)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

// delims returns the --delims flag when set, otherwise the configured set.
func (c *cli) delims(cmd *cobra.Command) ([]byte, error) {
	if cmd.Flags().Changed("delims") {
		s, err := cmd.Flags().GetString("delims")
		if err != nil {
			return nil, fmt.Errorf("failed to get delims flag: %w", err)
		}
		return c.arg(s)
	}
	return []byte(c.cfg.Delims), nil
}

// parseChar reads a character argument: a single byte, or a decimal, hex or
// octal integer in 0..255.
func parseChar(s string) (byte, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid character %q: want one byte or an integer", s)
	}
	n, err := safecast.Conv[int](v)
	if err != nil {
		return 0, fmt.Errorf("invalid character %q: %w", s, err)
	}
	return cstr.CheckedChar(n)
}

// parseCount reads a count argument. Range checks are left to the primitives.
func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return n, nil
}

// printResult writes "label: value" with colors.
func printResult(w io.Writer, label string, value any) {
	labelColor.Fprintf(w, "%s: ", label)
	valueColor.Fprintf(w, "%v\n", value)
}

// printIndex writes a search result, spelling out NotFound.
func printIndex(w io.Writer, label string, i int) {
	if i == cstr.NotFound {
		printResult(w, label, "not found")
		return
	}
	printResult(w, label, i)
}
