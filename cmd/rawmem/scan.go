package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhuweiyou/rawmem"
)

func newScanCmd(root *rootOptions) *cobra.Command {
	var (
		limit        int
		contextBytes int
	)

	cmd := &cobra.Command{
		Use:   "scan FILE PATTERN",
		Short: "Print every offset in FILE matching an AOB pattern",
		Example: `  rawmem scan game.exe "48 8b 05 ?? ?? ?? ?? 48 85 c0"
  rawmem scan dump.bin "de ad be ef" --limit 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger(cmd, "scan")

			pattern, err := rawmem.Compile(args[1])
			if err != nil {
				return err
			}

			m, err := rawmem.MapFile(args[0], false)
			if err != nil {
				return err
			}
			defer m.Close()

			region := m.Region()
			out := cmd.OutOrStdout()
			reported := 0
			rawmem.NewScannerFor(pattern, region).Each(func(match rawmem.Match) bool {
				reported++
				fmt.Fprintf(out, "0x%08X  %s\n", match.Offset(region), formatMatch(region, match, contextBytes))
				return limit <= 0 || reported < limit
			})

			logger.Info().
				Str("file", args[0]).
				Stringer("pattern", pattern).
				Int("size", m.Len()).
				Int("matches", reported).
				Msg("scan finished")
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many matches (0 = all)")
	cmd.Flags().IntVar(&contextBytes, "context", 0, "also print this many bytes around each match")
	return cmd
}

// formatMatch renders the matched bytes, bracketed between up to n bytes
// of surrounding data when n > 0. The surroundings never leave region.
func formatMatch(region rawmem.Region, match rawmem.Match, n int) string {
	data := rawmem.EncodeHex(match.Data, rawmem.Lowercase, " ")
	if n <= 0 {
		return data
	}

	before := min(uintptr(n), match.Offset(region))
	end := match.Address.Add(uintptr(len(match.Data)))
	after := min(uintptr(n), uintptr(region.End()-end))

	parts := make([]string, 0, 3)
	if before > 0 {
		parts = append(parts, rawmem.EncodeHex((match.Address - rawmem.Address(before)).Unchecked().Read(before), rawmem.Lowercase, " "))
	}
	parts = append(parts, "["+data+"]")
	if after > 0 {
		parts = append(parts, rawmem.EncodeHex(end.Unchecked().Read(after), rawmem.Lowercase, " "))
	}
	return strings.Join(parts, " ")
}
