// Package writers turns corrected reads into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (FASTA, debug TSV, JSONL).
//   - The engine stays domain-only; the app only sends results.
//   - JSONL goes through pkg/api (v1) for a stable wire format.
package writers
