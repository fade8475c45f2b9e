package main

import (
	"log/slog"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/n8patterson/basic-blockchain/ledger"
)

// creatorID identifies this dashboard as the author of every block it admits.
const creatorID = 42

func main() {
	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)

	// Create a new slog logger with the handler
	logger := slog.New(handler)

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Py", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("Chain", pterm.FgDarkGray.ToStyle()),
	).Render()

	chain := ledger.New()
	chain.SetDifficulty(2)
	logger.Info("ledger initialized", "difficulty", chain.Difficulty())

	actions := []string{"Add Block", "Show Ledger", "Inspect Block", "Set Difficulty", "Validate Chain", "Quit"}
	for {
		// Print a blank line for better readability
		pterm.Println()

		action, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Select an action").WithOptions(actions).Show()
		switch action {
		case "Add Block":
			addBlock(chain, logger)
		case "Show Ledger":
			renderLedger(chain.Blocks())
		case "Inspect Block":
			inspectBlock(chain.Blocks())
		case "Set Difficulty":
			setDifficulty(chain)
		case "Validate Chain":
			if chain.IsValid() {
				pterm.Success.Println("Blockchain is valid")
			} else {
				pterm.Error.Println("Blockchain is invalid!")
			}
		case "Quit":
			return
		default:
			panic("unknown action")
		}
	}
}

// addBlock reads a transaction from the user and admits it. Mining runs
// under a spinner since high difficulties can take a while.
func addBlock(chain *ledger.Blockchain, logger *slog.Logger) {
	sender, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Sender").Show()
	receiver, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Receiver").Show()
	amount, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Amount").Show()
	pterm.Println()

	spinner, _ := pterm.DefaultSpinner.Start("Mining the candidate block ...")
	if err := chain.Append(sender, receiver, amount, creatorID); err != nil {
		spinner.Fail()
		logger.Error(err.Error())
		return
	}
	spinner.Success()
	pterm.Success.Printfln("Winning hash %s", chain.Latest().Hash())
}

func setDifficulty(chain *ledger.Blockchain) {
	options := []string{"1", "2", "3", "4", "5"}
	choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Block difficulty").WithOptions(options).Show()
	difficulty, err := strconv.Atoi(choice)
	if err != nil {
		panic("unknown difficulty option")
	}
	chain.SetDifficulty(difficulty)
	pterm.Info.Printfln("Difficulty set to %d, applies from the next block", difficulty)
}
