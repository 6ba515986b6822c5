package keys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anyproto/go-slip10"
	"github.com/tyler-smith/go-bip39"

	"github.com/mark3labs/solkit-go"
)

// NewMnemonic generates a BIP39 mnemonic of 12 or 24 words.
func NewMnemonic(words int) (string, error) {
	var bits int
	switch words {
	case 12:
		bits = 128
	case 24:
		bits = 256
	default:
		return "", solkit.Errorf(solkit.ErrCodeInvalidAmount, "mnemonic must have 12 or 24 words, got %d", words)
	}

	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// FromMnemonic derives a keypair from a BIP39 mnemonic.
//
// With an empty path it follows solana-keygen: the first 32 bytes of the BIP39
// seed are the Ed25519 seed. Otherwise path is a SLIP-0010 path such as
// m/44'/501'/0'/0', the layout wallets use.
func FromMnemonic(mnemonic, passphrase, path string) (solkit.Keypair, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if !bip39.IsMnemonicValid(mnemonic) {
		return solkit.Keypair{}, solkit.NewError(solkit.ErrCodeInvalidKeyMaterial, "invalid mnemonic phrase", solkit.ErrInvalidKeyMaterial)
	}

	seed := bip39.NewSeed(mnemonic, passphrase)
	if path == "" {
		return FromSeed(seed[:solkit.SeedSize])
	}

	indexes, err := ParseDerivationPath(path)
	if err != nil {
		return solkit.Keypair{}, err
	}

	key, err := deriveSLIP10(seed, indexes)
	if err != nil {
		return solkit.Keypair{}, solkit.NewError(solkit.ErrCodeInvalidKeyMaterial, "failed to derive key", err)
	}
	return FromSeed(key)
}

// ParseDerivationPath parses a hardened-only path like m/44'/501'/0'/0'.
// Indexes are returned without the hardened offset. "h" is accepted in place of "'".
func ParseDerivationPath(path string) ([]uint32, error) {
	segments := strings.Split(path, "/")
	if len(segments) == 0 || segments[0] != "m" {
		return nil, solkit.Errorf(solkit.ErrCodeInvalidEncoding, "derivation path must start with m: %s", path)
	}

	indexes := make([]uint32, 0, len(segments)-1)
	for _, segment := range segments[1:] {
		trimmed := strings.TrimRight(segment, "'h")
		if len(trimmed) != len(segment)-1 {
			return nil, solkit.Errorf(solkit.ErrCodeInvalidEncoding, "derivation path segment %q must be hardened", segment)
		}

		index, err := strconv.ParseUint(trimmed, 10, 31)
		if err != nil {
			return nil, solkit.Errorf(solkit.ErrCodeInvalidEncoding, "invalid derivation path segment %q", segment)
		}
		indexes = append(indexes, uint32(index))
	}
	return indexes, nil
}

// deriveSLIP10 walks SLIP-0010 Ed25519 hardened derivation and returns the
// 32-byte private seed at the end of the path.
func deriveSLIP10(seed []byte, indexes []uint32) ([]byte, error) {
	node, err := slip10.NewMasterNode(seed)
	if err != nil {
		return nil, err
	}
	for _, index := range indexes {
		node, err = node.Derive(slip10.FirstHardenedIndex + index)
		if err != nil {
			return nil, err
		}
	}
	return node.RawSeed(), nil
}
