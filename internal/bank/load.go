package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed excel_bank.json
var defaultBank []byte

// Parse builds a Pool from raw bank JSON: an object mapping topic names to
// arrays of question records.
func Parse(data []byte) (*Pool, error) {
	var sections map[string][]Record
	if err := json.Unmarshal(data, &sections); err != nil {
		return nil, &MalformedBankError{Err: fmt.Errorf("decode bank JSON: %w", err)}
	}
	return Build(sections)
}

// Load reads and parses a bank file from disk.
func Load(path string) (*Pool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded Excel interview bank.
func Default() (*Pool, error) {
	return Parse(defaultBank)
}
