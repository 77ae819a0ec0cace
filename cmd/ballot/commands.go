package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ballotpaper/go-ballotpaper/ballot"
	"github.com/ballotpaper/go-ballotpaper/common/types"
	"github.com/ballotpaper/go-ballotpaper/receipts"
	"github.com/ballotpaper/go-ballotpaper/session"
)

const receiptsLockTimeout = 5 * time.Second

func accountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the voter account",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			s, account, err := a.connect(c.Context())
			if err != nil {
				return err
			}
			defer s.Reset()
			printAccount(a.out, "account", *account)
			return nil
		},
	}
}

func showCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the ballot and the current tally",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			s, b, err := a.open(c.Context())
			if err != nil {
				return err
			}
			defer s.Reset()

			contractAccount, err := s.ContractAccount()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "election:   %s %s\n", b.Location(), b.Year())
			printAccount(a.out, "contract", contractAccount)
			fmt.Fprintln(a.out, "candidates:")
			for _, candidate := range b.Candidates() {
				fmt.Fprintf(a.out, "  %d. %s\n", candidate.Index+1, candidate.Name)
			}
			printResults(a.out, s.Results())
			return nil
		},
	}
}

func voteCommand(a *app) *cobra.Command {
	var (
		ranks []uint
		force bool
	)
	c := &cobra.Command{
		Use:   "vote [candidate...]",
		Short: "Rank the candidates and submit the vote",
		Long: `Rank the candidates and submit the vote.

Candidates are listed by name, most preferred first. Alternatively --ranks assigns
a rank to every candidate in ballot order.`,
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) > 0 && len(ranks) > 0 {
				return errors.New("candidates and --ranks are mutually exclusive")
			}
			if len(args) == 0 && len(ranks) == 0 {
				return errors.New("rank at least one candidate")
			}
			address, err := a.conf.ContractAddress()
			if err != nil {
				return err
			}
			s, account, err := a.connect(c.Context())
			if err != nil {
				return err
			}
			defer s.Reset()

			store := receipts.NewStore(a.conf.DataDir, receipts.WithLogger(a.logger.Named("receipts")))
			lockCtx, cancelLock := context.WithTimeout(c.Context(), receiptsLockTimeout)
			unlock, err := store.Lock(lockCtx)
			cancelLock()
			if err != nil {
				return err
			}
			defer unlock()
			if !force {
				if err := store.Check(address, account.PublicKey); err != nil {
					return err
				}
			}
			b, err := s.Load(c.Context(), address)
			if err != nil {
				return err
			}
			if err := fillBallot(b, args, ranks); err != nil {
				return err
			}
			prefs := b.Preferences()

			ctx, cancel := signalContext(c.Context())
			defer cancel()
			receipt, err := s.SendVote(ctx)
			if msg, ok := ballot.IsRejection(err); ok {
				fmt.Fprintf(a.out, "vote rejected: %s\n", msg)
				return err
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "vote submitted in transaction %s\n", receipt.ID)
			err = store.Put(receipts.New(address, account.PublicKey, receipt.ID, prefs, time.Now()))
			if err != nil {
				a.logger.Warn("failed to save receipt", zap.Error(err))
			}
			return nil
		},
	}
	c.Flags().UintSliceVar(&ranks, "ranks", nil, "rank of every candidate in ballot order, 0 leaves it unranked")
	c.Flags().BoolVar(&force, "force", false, "vote even if a receipt of an earlier vote exists")
	return c
}

func fillBallot(b *ballot.Ballot, names []string, ranks []uint) error {
	if len(names) > 0 {
		return b.SetOrder(names...)
	}
	if len(ranks) != len(b.Candidates()) {
		return fmt.Errorf("got %d ranks for %d candidates", len(ranks), len(b.Candidates()))
	}
	for i, rank := range ranks {
		if rank > math.MaxUint8 {
			return fmt.Errorf("%w: %d", ballot.ErrRankOutOfRange, rank)
		}
		if err := b.SetPreference(i, uint8(rank)); err != nil {
			return err
		}
	}
	return nil
}

func watchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the tally after every consensus round",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			ctx, cancel := signalContext(c.Context())
			defer cancel()

			s, _, err := a.open(ctx, session.WithResultsListener(func(results []types.VoteResult) {
				fmt.Fprintf(a.out, "--- %s\n", time.Now().Format(time.TimeOnly))
				printResults(a.out, results)
			}))
			if err != nil {
				return err
			}
			defer s.Reset()
			<-ctx.Done()
			return nil
		},
	}
}

func printAccount(out io.Writer, label string, account types.Account) {
	w := tabwriter.NewWriter(out, 0, 4, 1, ' ', 0)
	fmt.Fprintf(w, "%s:\t%s\n", label, account.PublicKey)
	fmt.Fprintf(w, "balance:\t%d\n", account.Balance)
	fmt.Fprintf(w, "gas balance:\t%d\n", account.GasBalance)
	fmt.Fprintf(w, "stake:\t%d\n", account.Stake)
	fmt.Fprintf(w, "reward:\t%d\n", account.Reward)
	fmt.Fprintf(w, "nonce:\t%d\n", account.Nonce)
	w.Flush()
}

func printResults(out io.Writer, results []types.VoteResult) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "candidate\tpoints")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\n", r.Candidate, r.Points)
	}
	w.Flush()
}
