package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Bazz30/NRL/internal/server"
	"github.com/Bazz30/NRL/internal/snapshots"
)

const scrapeAll = "all"

type scrapeResult struct {
	Kinds []string `json:"kinds"`
	Round int      `json:"round,omitempty"`
	Dir   string   `json:"dir"`
}

func (c *cli) scrapeCmd() *cobra.Command {
	var round int
	cmd := &cobra.Command{
		Use:   "scrape [players|rounds|ladder|stats|all]",
		Short: "Fetch data from the provider and write snapshot files",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := scrapeAll
			if len(args) == 1 {
				target = strings.ToLower(strings.TrimSpace(args[0]))
			}
			return c.scrape(cmd.Context(), target, round)
		},
	}
	cmd.Flags().IntVar(&round, "round", 0, "round for stats (defaults to the current round)")
	return cmd
}

func (c *cli) scrape(ctx context.Context, target string, round int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := c.logger()
	cfg := c.cfg
	cfg.Provider = c.v.GetString("provider")
	dir := c.v.GetString("snapshots")

	provider := server.NewProvider(cfg, logger, nil)
	writer := snapshots.NewWriter(dir, nil)
	syncer := snapshots.NewSyncer(provider, writer, snapshots.SyncConfig{}, logger, nil)

	res := scrapeResult{Dir: dir}
	switch target {
	case scrapeAll:
		if err := syncer.Refresh(ctx); err != nil {
			return err
		}
		res.Kinds = []string{string(snapshots.KindPlayers), string(snapshots.KindRounds), string(snapshots.KindLadder)}
		statsRound, err := c.statsRound(round)
		if err != nil {
			return err
		}
		if err := syncer.RefreshStats(ctx, statsRound); err != nil {
			return fmt.Errorf("stats round %d: %w", statsRound, err)
		}
		res.Kinds = append(res.Kinds, string(snapshots.KindStats))
		res.Round = statsRound
	default:
		kind, err := snapshots.ParseKind(target)
		if err != nil {
			return err
		}
		if kind == snapshots.KindStats {
			statsRound, err := c.statsRound(round)
			if err != nil {
				return err
			}
			if err := syncer.RefreshStats(ctx, statsRound); err != nil {
				return fmt.Errorf("stats round %d: %w", statsRound, err)
			}
			res.Round = statsRound
		} else if err := syncer.Refresh(ctx, kind); err != nil {
			return err
		}
		res.Kinds = []string{string(kind)}
	}

	if c.v.GetBool("json") {
		return c.printJSON(res)
	}
	fmt.Fprintf(c.out, "wrote %s to %s", strings.Join(res.Kinds, ", "), res.Dir)
	if res.Round > 0 {
		fmt.Fprintf(c.out, " (stats round %d)", res.Round)
	}
	fmt.Fprintln(c.out)
	return nil
}

// statsRound picks the explicit round, else the current round from the rounds snapshot.
func (c *cli) statsRound(round int) (int, error) {
	if round < 0 {
		return 0, errors.New("round must be positive")
	}
	if round > 0 {
		return round, nil
	}
	lg, err := c.loadRounds(time.Now())
	if err != nil {
		return 0, err
	}
	id := lg.CurrentID(0)
	if id <= 0 {
		return 0, errors.New("no current round; pass --round")
	}
	return id, nil
}
