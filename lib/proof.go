package lib

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
)

// MaxProofBytes caps how large a proof image may be. Proofs are stored
// inline in the records file as base64, so a camera-roll original would
// bloat every subsequent load and save.
const MaxProofBytes = 2 << 20

// EncodeProofFile reads an image from disk and returns it as a data URI
// suitable for storing in a record's proof field. The content type is
// sniffed from the file's leading bytes. Callers treat any error as "no
// proof attached"; the record itself still saves.
func EncodeProofFile(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to stat proof file %v: %w", path, err)
	}

	if info.Size() > MaxProofBytes {
		return "", fmt.Errorf("proof file %v is %v bytes, the limit is %v", path, info.Size(), MaxProofBytes)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read proof file %v: %w", path, err)
	}

	return EncodeProof(b), nil
}

// EncodeProof converts raw image bytes into a data URI.
func EncodeProof(b []byte) string {
	mime := http.DetectContentType(b)

	return fmt.Sprintf("data:%v;base64,%v", mime, base64.StdEncoding.EncodeToString(b))
}
