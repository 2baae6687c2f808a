package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhuweiyou/rawmem"
)

func newHexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex",
		Short: "Hex and pattern helpers",
	}

	var (
		upper bool
		sep   string
	)
	encode := &cobra.Command{
		Use:   "encode TEXT",
		Short: "Print the bytes of TEXT as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lc := rawmem.Lowercase
			if upper {
				lc = rawmem.Uppercase
			}
			fmt.Fprintln(cmd.OutOrStdout(), rawmem.EncodeHex([]byte(args[0]), lc, sep))
			return nil
		},
	}
	encode.Flags().BoolVar(&upper, "upper", false, "use uppercase digits")
	encode.Flags().StringVar(&sep, "sep", " ", "separator between bytes")

	decode := &cobra.Command{
		Use:   "decode HEX",
		Short: "Write the bytes described by HEX to stdout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := rawmem.DecodeHex(args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	var minLength int
	pattern := &cobra.Command{
		Use:   "pattern TEXT",
		Short: "Turn TEXT into an AOB pattern; '?' in TEXT matches any byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), rawmem.StringToPattern(args[0], minLength))
			return nil
		},
	}
	pattern.Flags().IntVar(&minLength, "min-length", 0, "pad the pattern with wildcards to this many bytes")

	cmd.AddCommand(encode, decode, pattern)
	return cmd
}
