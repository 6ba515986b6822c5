// Package solkit provides the domain types, error taxonomy and response envelope
// shared by the key, instruction, signing and HTTP packages of solkit-go.
//
// solkit-go is a stateless service: it hands out Ed25519 keypairs, builds
// byte-exact instructions for the SPL Token and System programs, and signs or
// verifies messages. It never submits transactions and never stores keys.
package solkit

import "github.com/gagliardetto/solana-go"

// Program ids the instruction builders target. They are fixed by the ledger
// and must never be configurable.
var (
	// TokenProgramID is the SPL Token program.
	TokenProgramID = solana.TokenProgramID

	// SystemProgramID is the native System program.
	SystemProgramID = solana.SystemProgramID

	// RentSysvarID is the rent sysvar account read by InitializeMint.
	RentSysvarID = solana.SysVarRentPubkey

	// AssociatedTokenProgramID derives associated token account addresses.
	AssociatedTokenProgramID = solana.SPLAssociatedTokenAccountProgramID
)

// Size constants for key material and signatures.
const (
	PublicKeySize  = 32
	PrivateKeySize = 64
	SignatureSize  = 64
	SeedSize       = 32
)
