package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhuweiyou/rawmem"
	"github.com/zhuweiyou/rawmem/internal/patchset"
)

func newPatchCmd(root *rootOptions) *cobra.Command {
	var (
		patchFile string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "patch FILE",
		Short: "Apply a YAML patch set to FILE in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := root.logger(cmd, "patch")

			set, err := patchset.Load(patchFile)
			if err != nil {
				return err
			}

			m, err := rawmem.MapFile(args[0], !dryRun)
			if err != nil {
				return err
			}
			defer m.Close()

			region := m.Region()
			resolved, err := set.Resolve(region, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range resolved {
				replacement := r.Entry.Replacement()
				current := r.Target.Unchecked().Read(uintptr(len(replacement)))
				fmt.Fprintf(out, "%-24s 0x%08X  %s -> %s\n",
					r.Entry.Name,
					uintptr(r.Target-region.Start),
					rawmem.EncodeHex(current, rawmem.Lowercase, " "),
					rawmem.EncodeHex(replacement, rawmem.Lowercase, " "))
			}

			edits := patchset.Build(resolved, logger)
			edits.ApplyAll()

			if dryRun {
				edits.UndoAll()
				logger.Info().Int("patches", edits.Len()).Msg("dry run, nothing written")
				return nil
			}

			if err := m.Flush(); err != nil {
				edits.UndoAll()
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			logger.Info().Str("file", args[0]).Int("patches", edits.Len()).Msg("patches applied")
			return nil
		},
	}

	cmd.Flags().StringVarP(&patchFile, "patches", "p", "", "YAML patch set")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "resolve and apply to a private copy only")
	_ = cmd.MarkFlagRequired("patches")
	return cmd
}
