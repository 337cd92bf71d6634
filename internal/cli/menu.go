package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// Menu choices.
const (
	menuLoadSample = iota + 1
	menuPrintGhosts
	menuPrintRooms
	menuCheck
	menuExit
)

const menuText = `Menu:
1. Load Sample Data
2. Print Ghost List
3. Print Building Rooms
4. Check Building Invariants
5. Exit
`

const menuPrompt = "Enter your choice (1-5): "

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Long: `Menu starts with an empty building (or the sample building when
autoload_sample is set) and reads choices from stdin until Exit or EOF.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.AutoloadSample {
				if _, err := a.loadSample(); err != nil {
					return err
				}
			}
			return a.runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runMenu drives the menu loop. End of input behaves like Exit.
func (a *app) runMenu(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, menuText)
		choice, ok := readChoice(scanner, out)
		if !ok {
			choice = menuExit
		}

		switch choice {
		case menuLoadSample:
			res, err := a.loadSample()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Loaded %d rooms and %d ghosts.\n", res.RoomsAdded, res.GhostsCreated)
			if res.RoomsRejected > 0 {
				fmt.Fprintf(out, "Warning: RoomArray is full. %d rooms not added.\n", res.RoomsRejected)
			}
		case menuPrintGhosts:
			if err := a.printGhosts(out); err != nil {
				return err
			}
		case menuPrintRooms:
			if err := a.printRooms(out); err != nil {
				return err
			}
		case menuCheck:
			if err := a.runCheck(out); err != nil {
				fmt.Fprintln(out, err)
			}
		case menuExit:
			fmt.Fprintln(out, "Exiting program.")
			return nil
		}
	}
}

// readChoice prompts until a line holds a number from 1 to 5. It returns
// false when input ends first.
func readChoice(scanner *bufio.Scanner, out io.Writer) (int, bool) {
	for {
		fmt.Fprint(out, menuPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= menuLoadSample && n <= menuExit {
			return n, true
		}
	}
}

func (a *app) printGhosts(out io.Writer) error {
	if a.cfg.JSON {
		return writeJSON(out, a.ghostRecords())
	}
	fmt.Fprint(out, a.building.Ghosts().Render())
	return nil
}

func (a *app) printRooms(out io.Writer) error {
	if a.cfg.JSON {
		return writeJSON(out, a.roomRecords())
	}
	fmt.Fprint(out, a.building.Rooms().Render())
	return nil
}
