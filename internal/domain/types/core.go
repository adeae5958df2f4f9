package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Sequence is the position of an entry on the ledger. Sequences start at 1
// and grow by one per published payment; 0 means "before the first entry".
type Sequence uint64

// Next returns the sequence after s.
func (s Sequence) Next() Sequence { return s + 1 }
