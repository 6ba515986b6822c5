// Package signing signs and verifies arbitrary messages with Ed25519 keys.
//
// Signing is deterministic (RFC 8032), so the same message and key always
// produce the same signature. Verification is a pure function of its inputs:
// a well-formed but wrong signature yields false, never an error.
package signing

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/mark3labs/solkit-go"
	"github.com/mark3labs/solkit-go/encoding"
	"github.com/mark3labs/solkit-go/keys"
)

// Sign signs message with kp's private key.
func Sign(message []byte, kp solkit.Keypair) (solkit.SignedMessage, error) {
	signature, err := kp.PrivateKey.Sign(message)
	if err != nil {
		return solkit.SignedMessage{}, fmt.Errorf("failed to sign message: %w", err)
	}

	return solkit.SignedMessage{
		Message:   message,
		Signature: signature,
		PublicKey: kp.PublicKey,
	}, nil
}

// Verify reports whether signature is publicKey's signature over message.
func Verify(message []byte, signature solana.Signature, publicKey solana.PublicKey) bool {
	return signature.Verify(publicKey, message)
}

// SignText decodes a base58 secret key and signs message with it.
func SignText(message, secret string) (solkit.SignedMessage, error) {
	kp, err := keys.DecodePrivateKey(secret)
	if err != nil {
		return solkit.SignedMessage{}, err
	}
	return Sign([]byte(message), kp)
}

// VerifyText decodes a base64 signature and a base58 public key and verifies message.
// Decode failures are errors; a signature that does not verify is (false, nil).
func VerifyText(message, signature, pubkey string) (bool, error) {
	sig, err := encoding.DecodeSignature(signature)
	if err != nil {
		return false, err
	}

	publicKey, err := keys.DecodePublicKey(pubkey)
	if err != nil {
		return false, solkit.FieldError(solkit.ErrCodeInvalidPubkey, "pubkey", err)
	}

	return Verify([]byte(message), sig, publicKey), nil
}
