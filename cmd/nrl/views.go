package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Bazz30/NRL/internal/roster"
)

type positionsView struct {
	Round     int                    `json:"round"`
	Fulfilled bool                   `json:"fulfilled"`
	Positions []roster.PositionCount `json:"positions"`
}

func (c *cli) statusCmd() *cobra.Command {
	var round int
	var team string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show each roster player's status for a round",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.loadRoster(time.Now())
			if err != nil {
				return err
			}
			resolved := svc.ResolveRound(round)
			entries := svc.Entries(resolved, team)
			if c.v.GetBool("json") {
				return c.printJSON(entries)
			}
			tw := c.newTable(fmt.Sprintf("Round %d", resolved))
			tw.AppendHeader(table.Row{"ID", "Name", "Team", "Positions", "Role", "Status"})
			for _, e := range entries {
				tw.AppendRow(table.Row{e.ID, e.Name, e.Team, positionList(e.Positions), roleOf(e.Player), e.Status})
			}
			sum := svc.Summary(resolved)
			tw.AppendFooter(table.Row{"", "", "", "", "Playing", strconv.Itoa(sum.Playing) + "/" + strconv.Itoa(sum.Players)})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&round, "round", 0, "round (defaults to the current round)")
	cmd.Flags().StringVar(&team, "team", "", "only players from this team")
	return cmd
}

func (c *cli) positionsCmd() *cobra.Command {
	var round int
	cmd := &cobra.Command{
		Use:   "positions",
		Short: "Show position fulfilment for a round",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.loadRoster(time.Now())
			if err != nil {
				return err
			}
			resolved := svc.ResolveRound(round)
			counts := svc.Positions(resolved)
			view := positionsView{Round: resolved, Fulfilled: roster.AllFulfilled(counts), Positions: counts}
			if c.v.GetBool("json") {
				return c.printJSON(view)
			}
			tw := c.newTable(fmt.Sprintf("Round %d", resolved))
			tw.AppendHeader(table.Row{"Position", "Playing", "Playing (2nd)", "Total", "Total (2nd)", "Required", "Fulfilled"})
			for _, pc := range counts {
				tw.AppendRow(table.Row{pc.Position, pc.PlayingPrimary, pc.PlayingSecondary, pc.TotalPrimary, pc.TotalSecondary, pc.Required, yesNo(pc.Fulfilled)})
			}
			tw.AppendFooter(table.Row{"", "", "", "", "", "All", yesNo(view.Fulfilled)})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&round, "round", 0, "round (defaults to the current round)")
	return cmd
}

func (c *cli) pointsCmd() *cobra.Command {
	var round int
	cmd := &cobra.Command{
		Use:   "points",
		Short: "Score the roster from a round's stats snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := c.loadRoster(time.Now())
			if err != nil {
				return err
			}
			resolved := svc.ResolveRound(round)
			points, err := svc.Points(resolved)
			if err != nil {
				return err
			}
			if c.v.GetBool("json") {
				return c.printJSON(points)
			}
			tw := c.newTable(fmt.Sprintf("Round %d", resolved))
			tw.AppendHeader(table.Row{"ID", "Name", "Team", "Status", "Points"})
			total := 0.0
			for _, p := range points {
				score := "-"
				if p.HasStats {
					score = strconv.FormatFloat(p.Points, 'f', -1, 64)
					total += p.Points
				}
				tw.AppendRow(table.Row{p.ID, p.Name, p.Team, p.Status, score})
			}
			tw.AppendFooter(table.Row{"", "", "", "Total", strconv.FormatFloat(total, 'f', -1, 64)})
			tw.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&round, "round", 0, "round (defaults to the current round)")
	return cmd
}

func (c *cli) newTable(title string) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(c.out)
	tw.SetTitle(title)
	return tw
}
