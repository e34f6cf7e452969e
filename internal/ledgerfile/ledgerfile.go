// Package ledgerfile persists the operation log as a YAML document stream,
// one document per operation, in replay order. It is the only place the
// ledger touches the filesystem.
//
// Edit sessions are advisory and single-process: two concurrent editors of
// the same file clobber each other, last write wins.
package ledgerfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/potluck-dev/potluck/internal/ledger"
)

// DefaultFile is the operation log name used when no path is configured.
const DefaultFile = "ledger.yml"

// Save writes the ledger's operation sequence to path, replacing any
// previous content. Only operations are persisted; states are derived on
// load by replay.
func Save(path string, led *ledger.Ledger) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	for _, op := range led.Operations() {
		record, err := ledger.EncodeOperation(op)
		if err != nil {
			return fmt.Errorf("encoding operation: %w", err)
		}
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("encoding operation log: %w", err)
		}
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing operation log encoder: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing ledger file: %w", err)
	}
	slog.Debug("ledger saved", "path", path, "operations", len(led.Operations()))
	return nil
}

// Load reads the operation log at path and replays it into a fresh ledger.
// A log that fails to parse or to replay is rejected as a whole.
func Load(path string) (*ledger.Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening ledger file: %w", err)
	}
	defer f.Close()

	operations, err := readOperations(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger file %s: %w", path, err)
	}

	led, err := ledger.Replay(operations)
	if err != nil {
		return nil, fmt.Errorf("loading ledger file %s: %w", path, err)
	}
	slog.Debug("ledger loaded", "path", path, "operations", len(operations))
	return led, nil
}

// Exists reports whether a ledger file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// Edit is the scoped load-edit-save session: it loads the ledger, hands it
// to fn, and saves it back only when fn succeeds. A failed edit leaves the
// file exactly as it was.
func Edit(path string, fn func(*ledger.Ledger) error) error {
	led, err := Load(path)
	if err != nil {
		return err
	}
	if err := fn(led); err != nil {
		return err
	}
	return Save(path, led)
}

func readOperations(r io.Reader) ([]ledger.Operation, error) {
	dec := yaml.NewDecoder(r)
	var operations []ledger.Operation
	for {
		var record ledger.OpRecord
		if err := dec.Decode(&record); err != nil {
			if errors.Is(err, io.EOF) {
				return operations, nil
			}
			return nil, fmt.Errorf("document %d: %w", len(operations)+1, err)
		}
		op, err := ledger.DecodeOperation(record)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", len(operations)+1, err)
		}
		operations = append(operations, op)
	}
}
