// Package keys encodes, decodes and generates Ed25519 key material in the
// ledger's textual conventions.
//
// # Formats
//
// Public keys are 32 bytes and travel as base58 text. Private keys are the
// 64-byte seed||public form used by the Solana CLI and wallets, also as
// base58 text. A private key is only accepted when its public half is the one
// derived from its seed.
//
//	kp, err := keys.Generate()
//	pub, secret := keys.Encode(kp.PublicKey[:]), keys.Encode(kp.PrivateKey)
//
//	kp, err = keys.DecodePrivateKey(secret)
//	pk, err := keys.DecodePublicKey(pub)
//
// # Errors
//
// Every failure is a *solkit.Error that unwraps to one of
// solkit.ErrInvalidEncoding, solkit.ErrInvalidLength or
// solkit.ErrInvalidKeyMaterial.
//
// Nothing here keeps state; all functions are safe for concurrent use.
package keys

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"

	"github.com/mark3labs/solkit-go"
)

// Generate creates a fresh keypair from crypto/rand.
func Generate() (solkit.Keypair, error) {
	privateKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return solkit.Keypair{}, fmt.Errorf("failed to generate keypair: %w", err)
	}

	return solkit.Keypair{
		PublicKey:  privateKey.PublicKey(),
		PrivateKey: privateKey,
	}, nil
}

// FromSeed derives the keypair for a 32-byte Ed25519 seed.
func FromSeed(seed []byte) (solkit.Keypair, error) {
	if len(seed) != solkit.SeedSize {
		return solkit.Keypair{}, solkit.NewError(
			solkit.ErrCodeInvalidLength,
			fmt.Sprintf("seed must be %d bytes, got %d", solkit.SeedSize, len(seed)),
			solkit.ErrInvalidLength,
		)
	}

	privateKey := solana.PrivateKey(ed25519.NewKeyFromSeed(seed))
	return solkit.Keypair{
		PublicKey:  privateKey.PublicKey(),
		PrivateKey: privateKey,
	}, nil
}

// DecodePublicKey decodes a base58 public key.
// Malformed base58 and a decoded length other than 32 bytes both fail with solkit.ErrInvalidEncoding.
func DecodePublicKey(text string) (solana.PublicKey, error) {
	raw, err := decodeBase58(text)
	if err != nil {
		return solana.PublicKey{}, err
	}

	if len(raw) != solkit.PublicKeySize {
		return solana.PublicKey{}, solkit.NewError(
			solkit.ErrCodeInvalidEncoding,
			fmt.Sprintf("public key must decode to %d bytes, got %d", solkit.PublicKeySize, len(raw)),
			errors.Join(solkit.ErrInvalidEncoding, solkit.ErrInvalidLength),
		)
	}

	return solana.PublicKeyFromBytes(raw), nil
}

// DecodePrivateKey decodes a base58 64-byte private key into a keypair.
func DecodePrivateKey(text string) (solkit.Keypair, error) {
	raw, err := decodeBase58(text)
	if err != nil {
		return solkit.Keypair{}, err
	}

	return KeypairFromBytes(raw)
}

// KeypairFromBytes validates a raw 64-byte private key and returns its keypair.
func KeypairFromBytes(raw []byte) (solkit.Keypair, error) {
	if len(raw) != solkit.PrivateKeySize {
		return solkit.Keypair{}, solkit.NewError(
			solkit.ErrCodeInvalidLength,
			fmt.Sprintf("secret key must be %d bytes, got %d", solkit.PrivateKeySize, len(raw)),
			solkit.ErrInvalidLength,
		)
	}

	// The public half must be the one the seed derives.
	derived := ed25519.NewKeyFromSeed(raw[:solkit.SeedSize])
	if !bytes.Equal(derived[solkit.SeedSize:], raw[solkit.SeedSize:]) {
		return solkit.Keypair{}, solkit.NewError(
			solkit.ErrCodeInvalidKeyMaterial,
			"secret key does not match its public key",
			solkit.ErrInvalidKeyMaterial,
		)
	}

	privateKey := make(solana.PrivateKey, solkit.PrivateKeySize)
	copy(privateKey, raw)

	return solkit.Keypair{
		PublicKey:  privateKey.PublicKey(),
		PrivateKey: privateKey,
	}, nil
}

// Encode returns the canonical base58 text for b.
func Encode(b []byte) string {
	return base58.Encode(b)
}

// EncodeKeypair returns the base58 public key and secret key of kp.
func EncodeKeypair(kp solkit.Keypair) (pubkey, secret string) {
	return kp.PublicKey.String(), Encode(kp.PrivateKey)
}

func decodeBase58(text string) ([]byte, error) {
	if text == "" {
		return nil, solkit.NewError(solkit.ErrCodeInvalidEncoding, "empty base58 string", solkit.ErrInvalidEncoding)
	}

	raw, err := base58.Decode(text)
	if err != nil {
		return nil, solkit.NewError(solkit.ErrCodeInvalidEncoding, "invalid base58 encoding", solkit.ErrInvalidEncoding)
	}
	return raw, nil
}
