package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taskline/taskline/internal/suggest"
)

func (a *App) suggestCmd() *cobra.Command {
	var (
		kind   string
		cursor int
		limit  int
		apply  int
	)

	cmd := &cobra.Command{
		Use:   "suggest [text]",
		Short: "Show completions for an in-progress task line",
		Long: `Show ranked lexicon completions for the trigger governing the cursor
position. The cursor defaults to the end of the text. With --apply N the
Nth suggestion is applied and the updated line is printed instead.`,
		Example: `  taskline suggest "Call dentist *in"
  taskline suggest --kind=priority --cursor=14 "Call dentist !h tomorrow"
  taskline suggest --apply=1 "Call dentist *in"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := args[0]
			if cursor < 0 || cursor > len(text) {
				cursor = len(text)
			}

			entries, k, err := a.entriesFor(kind)
			if err != nil {
				return err
			}
			trigger := a.triggers.Char(k)
			if trigger == "" {
				return fmt.Errorf("no trigger character configured for %s", kind)
			}

			if !suggest.IsValidContext(text, cursor) || !suggest.HasTrigger(text, trigger, cursor) {
				fmt.Println("No suggestions.")
				return nil
			}

			query := suggest.QueryAfterTrigger(text, trigger, cursor)
			if limit <= 0 {
				limit = a.config.Suggest.Limit
			}
			matches := suggest.Rank(k, query, entries, limit)
			if len(matches) == 0 {
				fmt.Println("No suggestions.")
				return nil
			}

			if apply > 0 {
				if apply > len(matches) {
					return fmt.Errorf("--apply=%d out of range, only %d suggestions", apply, len(matches))
				}
				offset := suggest.TriggerOffset(text, trigger, cursor)
				newText, newCursor := suggest.ApplySelection(
					text, trigger, offset, matches[apply-1].Insert(a.config.Suggest.UseLabel))
				fmt.Println(newText)
				fmt.Printf("cursor: %d\n", newCursor)
				return nil
			}

			for i, s := range matches {
				if s.Label != "" && s.Label != s.Value {
					fmt.Printf("  %d. %s %s\n", i+1, s.Display, formatMuted("("+s.Value+")"))
				} else {
					fmt.Printf("  %d. %s\n", i+1, s.Display)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "status", "Lexicon kind: status or priority")
	cmd.Flags().IntVar(&cursor, "cursor", -1, "Cursor byte offset (default: end of text)")
	cmd.Flags().IntVar(&limit, "limit", 0, "Max suggestions (default: from config)")
	cmd.Flags().IntVar(&apply, "apply", 0, "Apply the Nth suggestion and print the updated line")

	return cmd
}
