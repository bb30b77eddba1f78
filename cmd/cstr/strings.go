package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-cstr/pkg/cstr"
)

func newLenCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "len STRING",
		Short: "Print the length of a string (strlen)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.arg(args[0])
			if err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "length", cstr.Strlen(s))
			return nil
		},
	}
}

func newCmpCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmp A B",
		Short: "Compare two strings (strcmp, strncmp with -n)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.args(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("max") {
				n, err := cmd.Flags().GetInt("max")
				if err != nil {
					return err
				}
				printResult(cmd.OutOrStdout(), "strncmp", cstr.Strncmp(in[0], in[1], n))
				return nil
			}
			printResult(cmd.OutOrStdout(), "strcmp", cstr.Strcmp(in[0], in[1]))
			return nil
		},
	}
	cmd.Flags().IntP("max", "n", 0, "compare at most n bytes")
	return cmd
}

func newFindCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find STRING CHAR",
		Short: "Find a character (strchr, strrchr with --last)",
		Long:  `CHAR is a single byte or an integer in 0..255 (decimal, 0x hex or 0 octal)`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.arg(args[0])
			if err != nil {
				return err
			}
			ch, err := parseChar(args[1])
			if err != nil {
				return err
			}
			last, err := cmd.Flags().GetBool("last")
			if err != nil {
				return err
			}
			if last {
				printIndex(cmd.OutOrStdout(), "strrchr", cstr.Strrchr(s, ch))
				return nil
			}
			printIndex(cmd.OutOrStdout(), "strchr", cstr.Strchr(s, ch))
			return nil
		},
	}
	cmd.Flags().Bool("last", false, "find the last occurrence")
	return cmd
}

func newSearchCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "search HAYSTACK NEEDLE",
		Short: "Find a substring (strstr)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.args(args)
			if err != nil {
				return err
			}
			printIndex(cmd.OutOrStdout(), "strstr", cstr.Strstr(in[0], in[1]))
			return nil
		},
	}
}

func newSpanCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "span STRING",
		Short: "Measure prefix spans over a byte set (strspn, strcspn, strpbrk)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.arg(args[0])
			if err != nil {
				return err
			}
			set, err := c.delims(cmd)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printResult(w, "strspn", cstr.Strspn(s, set))
			printResult(w, "strcspn", cstr.Strcspn(s, set))
			printIndex(w, "strpbrk", cstr.Strpbrk(s, set))
			return nil
		},
	}
	cmd.Flags().String("delims", "", "byte set (default from config)")
	return cmd
}

func newTokCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tok STRING",
		Short: "Split a string into tokens (strtok)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.arg(args[0])
			if err != nil {
				return err
			}
			delims, err := c.delims(cmd)
			if err != nil {
				return err
			}

			// Tokenize a terminated copy; the scan overwrites delimiters.
			buf := make([]byte, len(s)+1)
			copy(buf, s)

			w := cmd.OutOrStdout()
			cur := cstr.NewCursor(buf)
			for tok := cur.Next(delims); tok != nil; tok = cur.Next(delims) {
				printResult(w, strconv.Itoa(cur.Offset()), string(tok))
			}
			return nil
		},
	}
	cmd.Flags().String("delims", "", "delimiter set (default from config)")
	return cmd
}
