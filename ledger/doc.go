// Package ledger implements an immutable, hash-chained history of the hands
// settled during a truco match.
//
// # Core Components
//
// Blockchain: An append-only log of settlements with cryptographic hash
// chaining for tamper detection. It implements truco.Recorder, so it can be
// handed to a match with truco.WithRecorder.
//
// Block: A single settlement together with its position, timestamp and the
// links to the previous block.
//
// # Security Properties
//
// The blockchain provides:
//   - Immutability: Once recorded, blocks cannot be modified
//   - Verifiability: Anyone can verify the integrity of the entire chain
//   - Tamper detection: Any modification breaks the hash chain
package ledger
