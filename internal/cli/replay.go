package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wicaksn/sertika/internal/payload"
)

// ReplayResult reports a determinism check over a draft's edit history.
type ReplayResult struct {
	Draft         string `json:"draft"`
	Seq           int64  `json:"seq"`
	Hash          string `json:"hash"`
	Deterministic bool   `json:"deterministic"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <draft-id>",
		Short: "Rebuild a draft from its edit history and verify determinism",
		Long: `Rebuild a draft from its edit history and verify determinism.

Replays the draft's action log twice and compares the canonical hash
of the resulting preview payloads. The hashes must match: the log is
the draft's source of truth. Exit code 1 on mismatch.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd)
			ctx := cmd.Context()

			store, err := openStore(rootOpts)
			if err != nil {
				return err
			}
			defer store.Close()

			first, seq, err := store.Replay(ctx, args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "replay draft", err)
			}
			second, _, err := store.Replay(ctx, args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "replay draft", err)
			}

			firstHash, err := payload.Hash(payload.Preview(first))
			if err != nil {
				return WrapExitError(ExitCommandError, "hash replayed draft", err)
			}
			secondHash, err := payload.Hash(payload.Preview(second))
			if err != nil {
				return WrapExitError(ExitCommandError, "hash replayed draft", err)
			}

			result := ReplayResult{
				Draft:         args[0],
				Seq:           seq,
				Hash:          firstHash,
				Deterministic: firstHash == secondHash,
			}

			if formatter.Format == "json" {
				if err := formatter.Success(result); err != nil {
					return err
				}
			} else if result.Deterministic {
				fmt.Fprintf(formatter.Writer, "✓ Replay deterministic at seq %d (%s)\n", result.Seq, result.Hash)
			} else {
				fmt.Fprintf(formatter.Writer, "✗ Replay diverged: %s != %s\n", firstHash, secondHash)
			}

			if !result.Deterministic {
				return NewExitError(ExitFailure, "replay not deterministic")
			}
			return nil
		},
	}
}
