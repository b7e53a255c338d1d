package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/query"

	"github.com/spf13/cobra"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	var search, genre string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games matching a title search and genre",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			games := query.Filter(a.Catalog.List(), search, genre)
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), games)
			}
			return printGames(cmd.OutOrStdout(), games)
		},
	}
	cmd.Flags().StringVarP(&search, "search", "q", "", "case-insensitive title substring")
	cmd.Flags().StringVarP(&genre, "genre", "g", "", "exact genre")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func newShowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the details of one game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			game, ok := a.Catalog.Get(args[0])
			if !ok {
				return fmt.Errorf("game %q not found", args[0])
			}
			return printGame(cmd.OutOrStdout(), game)
		},
	}
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	var draft models.Draft
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a game to the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			game, err := a.Catalog.Add(cmd.Context(), draft)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", game.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&draft.Title, "title", "", "game title (required)")
	f.StringVar(&draft.Genre, "genre", "", "game genre (required)")
	f.StringSliceVar(&draft.Platforms, "platform", nil, "platform, repeatable: PC|PS5|Xbox|Switch|Mobile")
	f.BoolVar(&draft.Accessibility.Subtitles, "subtitles", false, "supports subtitles")
	f.BoolVar(&draft.Accessibility.Colorblind, "colorblind", false, "has colorblind modes")
	f.BoolVar(&draft.Accessibility.ControllerRemap, "controller-remap", false, "supports controller remapping")
	f.StringVar(&draft.Description, "description", "", "free-form description")
	return cmd
}

func newGenresCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List the distinct genres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			for _, g := range query.Genres(a.Catalog.List()) {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}
}

func printGames(w io.Writer, games []models.Game) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tGENRE\tPLATFORMS")
	for _, g := range games {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", g.ID, g.Title, g.Genre, strings.Join(g.Platforms, ","))
	}
	return tw.Flush()
}

func printGame(w io.Writer, g models.Game) error {
	yesNo := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", g.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", g.Title)
	fmt.Fprintf(tw, "Genre:\t%s\n", g.Genre)
	fmt.Fprintf(tw, "Platforms:\t%s\n", strings.Join(g.Platforms, ", "))
	fmt.Fprintf(tw, "Subtitles:\t%s\n", yesNo(g.Accessibility.Subtitles))
	fmt.Fprintf(tw, "Colorblind modes:\t%s\n", yesNo(g.Accessibility.Colorblind))
	fmt.Fprintf(tw, "Controller remap:\t%s\n", yesNo(g.Accessibility.ControllerRemap))
	if g.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", g.Description)
	}
	return tw.Flush()
}
