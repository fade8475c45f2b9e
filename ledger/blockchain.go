package ledger

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// DefaultDifficulty is the proof-of-work difficulty a freshly created chain
// starts with. It can be changed at any time with SetDifficulty.
const DefaultDifficulty = 4

// Blockchain maintains an append-only sequence of blocks chained by their
// hashes, together with the proof-of-work difficulty applied to new
// admissions. The chain always holds at least the genesis block and is never
// reordered or truncated.
type Blockchain struct {
	mu         sync.RWMutex
	blocks     []Block
	difficulty int
}

// New creates a blockchain with an initialized genesis block and the default
// difficulty. The genesis block carries the placeholder record, creator id 0,
// previous hash "0" and nonce 0; it is never mined.
func New() *Blockchain {
	bc := &Blockchain{
		blocks:     make([]Block, 0, 1),
		difficulty: DefaultDifficulty,
	}
	bc.blocks = append(bc.blocks, NewBlock(genesisRecord, 0, GenesisPrevHash))
	return bc
}

// Append parses amountText, builds a record and a candidate block wired to
// the current chain tail, and admits it through proof-of-work. A non-numeric
// amount returns an error and leaves the chain untouched.
func (bc *Blockchain) Append(sender, receiver, amountText string, creatorID int) error {
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amountText, err)
	}

	bc.mu.Lock()
	defer bc.mu.Unlock()

	record := Record{Sender: sender, Receiver: receiver, Amount: amount}
	prev := bc.blocks[len(bc.blocks)-1]
	bc.admit(NewBlock(record, creatorID, prev.Hash()))

	return nil
}

// AddBlock admits a candidate block: it runs the proof-of-work search at the
// chain's current difficulty and appends the mined block. The caller must
// already have set the candidate's PrevHash to the current tail's hash;
// admission does not wire linkage and never rejects.
func (bc *Blockchain) AddBlock(candidate Block) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	bc.admit(candidate)
}

// admit mines and appends. Callers hold bc.mu.
func (bc *Blockchain) admit(candidate Block) {
	proofOfWork(&candidate, bc.difficulty)
	bc.blocks = append(bc.blocks, candidate)
}

// proofOfWork searches for a nonce whose digest carries difficulty leading
// '0' hex characters. The search starts from the candidate's current nonce,
// advances it by exactly 1 per attempt and is unbounded; difficulty 0
// matches immediately. The winning digest is returned.
func proofOfWork(candidate *Block, difficulty int) string {
	prefix := strings.Repeat("0", difficulty)

	hash := candidate.Hash()
	for !strings.HasPrefix(hash, prefix) {
		candidate.Nonce++
		hash = candidate.Hash()
	}
	return hash
}

// IsValid reports whether every block's stored previous hash matches the
// actual hash of its predecessor, walking the chain from the genesis block
// and stopping at the first mismatch. A chain holding only the genesis block
// is trivially valid. Linkage is the only property checked: historical
// proof-of-work is not re-verified.
func (bc *Blockchain) IsValid() bool {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	prevHash := bc.blocks[0].Hash()
	for _, block := range bc.blocks[1:] {
		if block.PrevHash != prevHash {
			return false
		}
		prevHash = block.Hash()
	}
	return true
}

// SetDifficulty changes the proof-of-work difficulty. It affects future
// admissions only; already-mined blocks are never re-mined.
func (bc *Blockchain) SetDifficulty(difficulty int) {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	bc.difficulty = difficulty
}

// Difficulty returns the difficulty applied to the next admission.
func (bc *Blockchain) Difficulty() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.difficulty
}

// Latest returns the most recently admitted block.
func (bc *Blockchain) Latest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1]
}

// Blocks returns a copy of the chain in admission order. Mutating the copy
// does not affect the ledger.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	blocks := make([]Block, len(bc.blocks))
	copy(blocks, bc.blocks)
	return blocks
}
