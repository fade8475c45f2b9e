package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/n8patterson/basic-blockchain/ledger"
)

func renderLedger(blocks []ledger.Block) {
	data := pterm.TableData{
		{"#", "Sender", "Receiver", "Amount", "Creator", "Prev Hash", "Timestamp", "Nonce"},
	}
	for i, b := range blocks {
		data = append(data, ledgerRow(i, b))
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func ledgerRow(i int, b ledger.Block) []string {
	return []string{
		strconv.Itoa(i),
		b.Record.Sender,
		b.Record.Receiver,
		strconv.FormatFloat(b.Record.Amount, 'f', -1, 64),
		strconv.Itoa(b.CreatorID),
		shortHash(b.PrevHash),
		b.Timestamp,
		strconv.Itoa(b.Nonce),
	}
}

// shortHash abbreviates a digest for tabular display. The genesis sentinel
// and other short values pass through unchanged.
func shortHash(hash string) string {
	if len(hash) <= 12 {
		return hash
	}
	return hash[:12] + "..."
}

func inspectBlock(blocks []ledger.Block) {
	labels := make([]string, len(blocks))
	for i, b := range blocks {
		labels[i] = blockLabel(i, b)
	}
	choice, _ := pterm.DefaultInteractiveSelect.WithDefaultText("Which block would you like to see?").WithOptions(labels).Show()
	for i, label := range labels {
		if label == choice {
			renderBlock(i, blocks[i])
			return
		}
	}
}

func blockLabel(i int, b ledger.Block) string {
	if i == 0 {
		return "0: Genesis"
	}
	return pterm.Sprintf("%d: %s -> %s", i, b.Record.Sender, b.Record.Receiver)
}

func renderBlock(i int, b ledger.Block) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	pbox.WithTitle(pterm.LightCyan("Block " + strconv.Itoa(i))).WithTitleTopLeft().Printfln(
		"%s\nCreator: %d\nPrev Hash: %s\nTimestamp: %s\nNonce: %d\nHash: %s",
		b.Record.String(), b.CreatorID, b.PrevHash, b.Timestamp, b.Nonce, b.Hash(),
	)
}
