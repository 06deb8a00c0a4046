package ui

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) parseCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [text...]",
		Short: "Parse task lines into structured fields",
		Long: `Parse one task line given as arguments, or one line per row from a
stdin pipe when no arguments are given.`,
		Example: `  taskline parse "Review budget due tomorrow at 3pm @office #finance"
  cat inbox.txt | taskline parse --json`,
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return a.printParsed(strings.Join(args, " "), asJSON)
			}
			if stdinIsTerminal() {
				return errors.New("no text given and stdin is a terminal")
			}

			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if err := a.printParsed(line, asJSON); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON, one object per line")

	return cmd
}

func (a *App) printParsed(line string, asJSON bool) error {
	res := a.parser.Parse(line)
	if asJSON {
		data, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}
	printResult(res)
	return nil
}
