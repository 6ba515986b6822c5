package keys

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mark3labs/solkit-go"
)

// LoadKeygenFile loads a keypair from a Solana CLI keygen JSON file.
func LoadKeygenFile(path string) (solkit.Keypair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return solkit.Keypair{}, fmt.Errorf("failed to read keygen file: %w", err)
	}
	return ParseKeygenJSON(data)
}

// ParseKeygenJSON parses the keygen JSON array format: [1, 2, 3, ...]
func ParseKeygenJSON(data []byte) (solkit.Keypair, error) {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return solkit.Keypair{}, solkit.NewError(solkit.ErrCodeInvalidEncoding, "keygen file is not a JSON byte array", solkit.ErrInvalidEncoding)
	}

	raw := make([]byte, len(ints))
	for i, v := range ints {
		if v < 0 || v > 255 {
			return solkit.Keypair{}, solkit.NewError(
				solkit.ErrCodeInvalidEncoding,
				fmt.Sprintf("keygen byte %d out of range: %d", i, v),
				solkit.ErrInvalidEncoding,
			)
		}
		raw[i] = byte(v)
	}

	return KeypairFromBytes(raw)
}

// MarshalKeygenJSON renders kp in the keygen JSON array format.
func MarshalKeygenJSON(kp solkit.Keypair) ([]byte, error) {
	// []byte would marshal as base64, the CLI format is an array of numbers.
	ints := make([]int, len(kp.PrivateKey))
	for i, b := range kp.PrivateKey {
		ints[i] = int(b)
	}
	return json.Marshal(ints)
}
