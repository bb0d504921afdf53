package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hoodca/statedb/service"
	"github.com/hoodca/statedb/utils"
)

// Console is the interactive lookup loop over one dataset: enter a state
// code to print its records, 'all' to list codes with counts, 'quit' to
// leave.
type Console struct {
	Servicer service.Servicer
	Dataset  string
	In       io.Reader
	Out      io.Writer
}

func (c *Console) Run() error {

	fmt.Fprintf(c.Out, "Enter a state code to display its rows, or:\n")
	fmt.Fprintf(c.Out, "  'all' to list available state codes and counts, 'quit' to exit\n")

	scanner := bufio.NewScanner(c.In)

	for {
		fmt.Fprintf(c.Out, "\nState code (or all/quit): ")

		if !scanner.Scan() {
			fmt.Fprintf(c.Out, "\nGoodbye\n")
			return scanner.Err()
		}

		choice := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if choice == "" {
			continue
		}

		if choice == "QUIT" || choice == "EXIT" {
			fmt.Fprintf(c.Out, "Goodbye\n")
			return nil
		}

		if choice == "ALL" {
			err := c.printAll()
			if err != nil {
				return err
			}
			continue
		}

		err := c.printState(choice)
		if err != nil {
			return err
		}
	}
}

func (c *Console) printAll() error {

	keys, err := c.Servicer.Keys(c.Dataset)
	if err != nil {
		return err
	}

	for _, key := range keys {
		total, err := c.Servicer.Count(c.Dataset, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Out, "%s: %d rows\n", key, total)
	}

	return nil
}

func (c *Console) printState(code string) error {

	records, err := c.Servicer.Lookup(c.Dataset, code)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(c.Out, "No data for state code: %s\n", code)
		suggestions, err := c.Servicer.Suggest(c.Dataset, code, 8)
		if err != nil {
			return err
		}
		if len(suggestions) > 0 {
			fmt.Fprintf(c.Out, "Did you mean: %s\n", strings.Join(suggestions, ", "))
		}
		return nil
	}

	fmt.Fprintf(c.Out, "Showing %d rows for %s\n", len(records), code)
	for i, rec := range records {
		fmt.Fprintf(c.Out, "\n--- row %d ---\n", i+1)
		for _, field := range utils.GetKeys(rec) {
			fmt.Fprintf(c.Out, "  %s: %v\n", field, rec[field])
		}
	}

	return nil
}
