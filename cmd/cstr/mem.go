package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shapestone/shape-cstr/pkg/cstr"
)

func newFillCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fill STRING CHAR N",
		Short: "Overwrite the first N bytes with CHAR (memset)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := c.arg(args[0])
			if err != nil {
				return err
			}
			ch, err := parseChar(args[1])
			if err != nil {
				return err
			}
			n, err := parseCount("count", args[2])
			if err != nil {
				return err
			}
			if _, err := cstr.Memset(buf, ch, n); err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "memset", fmt.Sprintf("%q", buf))
			return nil
		},
	}
}

func newMoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "move STRING DST SRC N",
		Short: "Move N bytes within STRING from offset SRC to offset DST (memmove)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := c.arg(args[0])
			if err != nil {
				return err
			}
			var offsets [3]int
			for i, name := range []string{"destination offset", "source offset", "count"} {
				if offsets[i], err = parseCount(name, args[i+1]); err != nil {
					return err
				}
			}
			dst, src, n := offsets[0], offsets[1], offsets[2]
			if dst < 0 || dst > len(buf) || src < 0 || src > len(buf) {
				return fmt.Errorf("offsets must be within 0..%d", len(buf))
			}
			if n > 0 {
				if err := checkRange("destination", dst, n, len(buf)); err != nil {
					return err
				}
				if err := checkRange("source", src, n, len(buf)); err != nil {
					return err
				}
			}
			if _, err := cstr.Memmove(buf[dst:], buf[src:], n); err != nil {
				return err
			}
			printResult(cmd.OutOrStdout(), "memmove", fmt.Sprintf("%q", buf))
			return nil
		},
	}
}

// checkRange reports an offset whose n-byte span runs past a buffer of size.
func checkRange(name string, off, n, size int) error {
	if off+n > size {
		return fmt.Errorf("%s offset %d + count %d exceeds length %d: %w", name, off, n, size, cstr.ErrBufferTooSmall)
	}
	return nil
}
