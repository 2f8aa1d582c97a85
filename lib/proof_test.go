package lib

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a minimal png header is enough for content-type sniffing
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestEncodeProof(t *testing.T) {
	got := EncodeProof(pngBytes)

	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"), "got %v", got)

	payload := strings.TrimPrefix(got, "data:image/png;base64,")

	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded)
}

func TestEncodeProofFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proof.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0o644))

	got, err := EncodeProofFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:image/png;base64,"))
}

func TestEncodeProofFileMissing(t *testing.T) {
	_, err := EncodeProofFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}

func TestEncodeProofFileTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.png")
	require.NoError(t, os.WriteFile(path, make([]byte, MaxProofBytes+1), 0o644))

	_, err := EncodeProofFile(path)
	assert.ErrorContains(t, err, "limit")
}
