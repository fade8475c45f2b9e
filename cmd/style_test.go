package main

import (
	"testing"

	"github.com/n8patterson/basic-blockchain/ledger"
)

// TestLedgerRow verifies the tabular form of a block: one cell per field,
// with the amount in its shortest decimal form and the previous hash
// abbreviated.
func TestLedgerRow(t *testing.T) {
	block := ledger.Block{
		Record:    ledger.Record{Sender: "Alice", Receiver: "Bob", Amount: 10.0},
		CreatorID: 42,
		PrevHash:  "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Timestamp: "12:00:00",
		Nonce:     17,
	}

	row := ledgerRow(3, block)

	want := []string{"3", "Alice", "Bob", "10", "42", "aaaaaaaaaaaa...", "12:00:00", "17"}
	if len(row) != len(want) {
		t.Fatalf("expected %d cells, got %d", len(want), len(row))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("cell %d should be %q, got %q", i, want[i], row[i])
		}
	}
}

// TestShortHash verifies that the genesis sentinel passes through unchanged
// while full digests are abbreviated.
func TestShortHash(t *testing.T) {
	if got := shortHash(ledger.GenesisPrevHash); got != ledger.GenesisPrevHash {
		t.Fatalf("sentinel should pass through, got %q", got)
	}
	if got := shortHash("0123456789abcdef0123456789abcdef"); got != "0123456789ab..." {
		t.Fatalf("unexpected abbreviation: %q", got)
	}
}

// TestBlockLabel verifies the inspector labels: the genesis block is named
// as such, later blocks are labelled by their transaction.
func TestBlockLabel(t *testing.T) {
	genesis := ledger.Block{Record: ledger.Record{Sender: "Genesis"}}
	if got := blockLabel(0, genesis); got != "0: Genesis" {
		t.Fatalf("unexpected genesis label: %q", got)
	}

	block := ledger.Block{Record: ledger.Record{Sender: "Alice", Receiver: "Bob", Amount: 10.0}}
	if got := blockLabel(2, block); got != "2: Alice -> Bob" {
		t.Fatalf("unexpected block label: %q", got)
	}
}
