package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/jaekwang-park/todolist-api/internal/logging"
	"github.com/jaekwang-park/todolist-api/internal/model"
	"github.com/jaekwang-park/todolist-api/internal/repository"
	"github.com/jaekwang-park/todolist-api/internal/seed"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace all lists and items with sample data",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		// seed is run from a terminal; always log in console form
		slog.SetDefault(logging.New(os.Stderr, cfg.ParseLogLevel(), logging.FormatText))

		db, err := openStore(ctx)
		if err != nil {
			return err
		}
		defer db.Close()

		lists := repository.NewSQLList(db)
		items := repository.NewSQLItem(db)

		res, err := seed.Run(ctx, lists, items)
		if err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		slog.Info("database seeded", "lists", res.Lists, "items", res.Items)

		allLists, err := lists.All(ctx)
		if err != nil {
			return err
		}
		var allItems []model.Item
		for _, l := range allLists {
			its, err := items.ListByList(ctx, l.ID)
			if err != nil {
				return err
			}
			allItems = append(allItems, its...)
		}

		printSeeded(cmd.OutOrStdout(), res, allLists, allItems)
		return nil
	},
}

func printSeeded(w io.Writer, res seed.Result, lists []model.List, items []model.Item) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Inserted %d lists and %d items.", res.Lists, res.Items)))

	listRows := make([][]string, 0, len(lists))
	for _, l := range lists {
		desc := ""
		if l.Description != nil {
			desc = *l.Description
		}
		listRows = append(listRows, []string{l.ID, l.Name, desc})
	}
	fmt.Fprintln(w, titleStyle.Render("Lists"))
	fmt.Fprintln(w, renderTable([]string{"ID", "NAME", "DESCRIPTION"}, listRows))

	itemRows := make([][]string, 0, len(items))
	for _, it := range items {
		itemRows = append(itemRows, []string{it.ID, it.ListID, it.Description, string(it.Status)})
	}
	fmt.Fprintln(w, titleStyle.Render("Items"))
	fmt.Fprintln(w, renderTable([]string{"ID", "LIST", "DESCRIPTION", "STATUS"}, itemRows))
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}
