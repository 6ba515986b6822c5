// Package instruction builds byte-exact instructions for the SPL Token and
// System programs.
//
// The ABI (account order, signer and writable flags, data layout) belongs to
// the on-chain programs, so encoding is delegated to an Encoder with one method
// per supported operation. ProgramEncoder is backed by solana-go's program
// bindings; the layouts it produces are pinned by golden tests:
//
//	InitializeMint  [mint (w), rent sysvar]                     [0, decimals, authority(32), 0]
//	MintTo          [mint (w), destination (w), authority (s)]  [7, amount u64 LE]
//	Transfer        [from (w,s), to (w)]                        [2,0,0,0, lamports u64 LE]
//	TokenTransfer   [source (w), destination (w), owner (s)]    [3, amount u64 LE]
package instruction

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
)

// Encoder encodes one instruction per supported on-chain operation.
type Encoder interface {
	// InitializeMint initializes mint with no freeze authority.
	InitializeMint(mint, mintAuthority solana.PublicKey, decimals uint8) (solana.Instruction, error)

	// MintTo mints amount base units of mint into destination, authorized by a single authority.
	MintTo(mint, destination, authority solana.PublicKey, amount uint64) (solana.Instruction, error)

	// Transfer moves lamports from one system account to another.
	Transfer(from, to solana.PublicKey, lamports uint64) (solana.Instruction, error)

	// TokenTransfer moves amount base units between token accounts, authorized by owner.
	TokenTransfer(source, destination, owner solana.PublicKey, amount uint64) (solana.Instruction, error)
}

// ProgramEncoder implements Encoder with solana-go's program bindings.
type ProgramEncoder struct{}

var _ Encoder = ProgramEncoder{}

// InitializeMint implements Encoder.
func (ProgramEncoder) InitializeMint(mint, mintAuthority solana.PublicKey, decimals uint8) (solana.Instruction, error) {
	// Freeze authority is left unset so it encodes as None.
	ix, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(mintAuthority).
		SetMintAccount(mint).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return nil, err
	}
	return ix, nil
}

// MintTo implements Encoder.
func (ProgramEncoder) MintTo(mint, destination, authority solana.PublicKey, amount uint64) (solana.Instruction, error) {
	ix, err := token.NewMintToInstructionBuilder().
		SetAmount(amount).
		SetMintAccount(mint).
		SetDestinationAccount(destination).
		SetAuthorityAccount(authority).
		ValidateAndBuild()
	if err != nil {
		return nil, err
	}
	return ix, nil
}

// Transfer implements Encoder.
func (ProgramEncoder) Transfer(from, to solana.PublicKey, lamports uint64) (solana.Instruction, error) {
	ix, err := system.NewTransferInstruction(lamports, from, to).ValidateAndBuild()
	if err != nil {
		return nil, err
	}
	return ix, nil
}

// TokenTransfer implements Encoder.
func (ProgramEncoder) TokenTransfer(source, destination, owner solana.PublicKey, amount uint64) (solana.Instruction, error) {
	ix, err := token.NewTransferInstructionBuilder().
		SetAmount(amount).
		SetSourceAccount(source).
		SetDestinationAccount(destination).
		SetOwnerAccount(owner).
		ValidateAndBuild()
	if err != nil {
		return nil, err
	}
	return ix, nil
}
