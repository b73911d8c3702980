package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/babydepdev/otp-network-setting-go/src/internal/hashing"
	"github.com/babydepdev/otp-network-setting-go/src/internal/selection"
	"github.com/babydepdev/otp-network-setting-go/src/internal/utils"
)

// readSelections decodes a selection set from the given path ("-" = stdin).
// The input is read through the MD5 proxy so reruns over unchanged input can
// be recognized in debug logs; the returned checksum fingerprints the raw
// input bytes.
func readSelections(path string) (*selection.SelectionSet, string, error) {
	var reader io.Reader

	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open selections file: %v", err)
		}
		defer utils.CloseOrWarn(file)
		reader = file
	}

	proxy := hashing.NewMD5ReaderProxy(reader)

	var set selection.SelectionSet
	decoder := json.NewDecoder(proxy)
	if err := decoder.Decode(&set); err != nil {
		return nil, "", fmt.Errorf("failed to decode selections: %v", err)
	}

	// Drain trailing bytes (whitespace) so the checksum covers the whole input.
	if _, err := io.Copy(io.Discard, proxy); err != nil {
		return nil, "", fmt.Errorf("failed to read selections: %v", err)
	}

	checksum, err := proxy.GetChecksum()
	if err != nil {
		return nil, "", err
	}

	return &set, checksum, nil
}
