// Package ledger implements a minimal append-only blockchain of transaction
// records with proof-of-work admission.
//
// # Core Components
//
// Record: An immutable transaction payload naming a sender, a receiver and
// an amount.
//
// Block: A single ledger entry wrapping a record together with its creator
// id, the previous block's hash, a creation timestamp and the nonce found by
// proof-of-work.
//
// Blockchain: An ordered, append-only sequence of blocks plus a tunable
// difficulty. It owns block admission and whole-chain validation.
//
// # Admission
//
// A candidate block enters the chain through a brute-force nonce search: the
// block's SHA-256 digest is recomputed with an incrementing nonce until it
// carries the required number of leading zero hex characters. The search is
// a blocking, CPU-bound loop with no upper bound; difficulty is the only
// cost knob and takes effect on the next admission only.
//
// # Validation
//
// IsValid walks the chain from the genesis block and checks that each
// block's stored previous hash equals the actual hash of its predecessor.
// Any mutation of an admitted block breaks the chain at that link. The
// genesis block has the sentinel previous hash "0" and is exempt.
//
// The ledger is a single-writer, in-memory structure: no networking, no
// persistence and no transaction signing.
package ledger
