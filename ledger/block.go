package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// GenesisPrevHash is the sentinel stored as the genesis block's previous
// hash. It is distinct from any real digest.
const GenesisPrevHash = "0"

// genesisRecord is the placeholder payload of the genesis block. It is not a
// valid transaction; it is hashed through the same encoding as every other
// record.
var genesisRecord = Record{Sender: "Genesis"}

// Record is the transaction payload carried by a block: who paid whom, and
// how much. Records are immutable once constructed and compare structurally.
type Record struct {
	Sender   string  `json:"sender"`
	Receiver string  `json:"receiver"`
	Amount   float64 `json:"amount"`
}

// String returns the canonical textual form of the record, which is also the
// form fed into the block digest. The amount is rendered with the shortest
// decimal representation that round-trips, so every encoder of the same
// record produces identical bytes.
func (r Record) String() string {
	return "Record{Sender:" + r.Sender +
		" Receiver:" + r.Receiver +
		" Amount:" + strconv.FormatFloat(r.Amount, 'f', -1, 64) + "}"
}

// Block is a single ledger entry: a record plus the metadata that binds it to
// the chain and the nonce found by proof-of-work. All fields are write-once
// after construction except Nonce, which only the proof-of-work search may
// advance.
type Block struct {
	Record    Record `json:"record"`
	CreatorID int    `json:"creator_id"`
	PrevHash  string `json:"prev_hash"`
	Timestamp string `json:"timestamp"` // HH:MM:SS in UTC, fixed at construction
	Nonce     int    `json:"nonce"`
}

// NewBlock builds a candidate block for the given record, stamped with the
// current UTC time and a zero nonce. The caller is responsible for passing
// the current chain tail's hash as prevHash before handing the candidate to
// admission.
func NewBlock(record Record, creatorID int, prevHash string) Block {
	return Block{
		Record:    record,
		CreatorID: creatorID,
		PrevHash:  prevHash,
		Timestamp: time.Now().UTC().Format("15:04:05"),
	}
}

// Hash computes the SHA-256 digest of the block as 64 lowercase hex
// characters. The digest is a pure function of the record, the creator id,
// the timestamp, the previous hash and the nonce, fed into the accumulator
// in that order.
func (b Block) Hash() string {
	h := sha256.New()
	h.Write([]byte(b.Record.String()))
	h.Write([]byte(strconv.Itoa(b.CreatorID)))
	h.Write([]byte(b.Timestamp))
	h.Write([]byte(b.PrevHash))
	h.Write([]byte(strconv.Itoa(b.Nonce)))
	return hex.EncodeToString(h.Sum(nil))
}
