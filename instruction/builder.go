package instruction

import (
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/mark3labs/solkit-go"
	"github.com/mark3labs/solkit-go/keys"
)

// CreateMintParams are the inputs of CreateMint. Keys are base58 text.
type CreateMintParams struct {
	MintAuthority string
	Mint          string
	Decimals      uint8
}

// MintToParams are the inputs of MintTo.
// Only a single authority is supported; multisig co-signers are not.
type MintToParams struct {
	Mint        string
	Destination string
	Authority   string
	Amount      uint64
}

// TransferParams are the inputs of TransferNative.
type TransferParams struct {
	From     string
	To       string
	Lamports uint64
}

// TokenTransferParams are the inputs of TransferToken. Destination and Owner
// are wallet addresses; their associated token accounts for Mint are derived.
type TokenTransferParams struct {
	Destination string
	Mint        string
	Owner       string
	Amount      uint64
}

// Builder validates parameters and produces instruction descriptors.
// It holds no mutable state and is safe for concurrent use.
type Builder struct {
	encoder Encoder
}

// NewBuilder creates a Builder that encodes with encoder.
func NewBuilder(encoder Encoder) *Builder {
	return &Builder{encoder: encoder}
}

// DefaultBuilder encodes with ProgramEncoder.
var DefaultBuilder = NewBuilder(ProgramEncoder{})

// CreateMint builds an InitializeMint instruction with no freeze authority.
func (b *Builder) CreateMint(params CreateMintParams) (solkit.Instruction, error) {
	mintAuthority, err := decodeField("mintAuthority", params.MintAuthority)
	if err != nil {
		return solkit.Instruction{}, err
	}
	mint, err := decodeField("mint", params.Mint)
	if err != nil {
		return solkit.Instruction{}, err
	}

	ix, err := b.encoder.InitializeMint(mint, mintAuthority, params.Decimals)
	return finish("initialize mint", ix, err)
}

// MintTo builds a MintTo instruction. Any u64 amount is accepted, zero included.
func (b *Builder) MintTo(params MintToParams) (solkit.Instruction, error) {
	mint, err := decodeField("mint", params.Mint)
	if err != nil {
		return solkit.Instruction{}, err
	}
	destination, err := decodeField("destination", params.Destination)
	if err != nil {
		return solkit.Instruction{}, err
	}
	authority, err := decodeField("authority", params.Authority)
	if err != nil {
		return solkit.Instruction{}, err
	}

	ix, err := b.encoder.MintTo(mint, destination, authority, params.Amount)
	return finish("mint to", ix, err)
}

// TransferNative builds a System program transfer. Lamports must be positive.
func (b *Builder) TransferNative(params TransferParams) (solkit.Instruction, error) {
	from, err := decodeField("from", params.From)
	if err != nil {
		return solkit.Instruction{}, err
	}
	to, err := decodeField("to", params.To)
	if err != nil {
		return solkit.Instruction{}, err
	}
	if err := requirePositive("lamports", params.Lamports); err != nil {
		return solkit.Instruction{}, err
	}

	ix, err := b.encoder.Transfer(from, to, params.Lamports)
	return finish("transfer", ix, err)
}

// TransferToken builds an SPL token transfer between the associated token
// accounts of Owner and Destination for Mint. Amount must be positive.
func (b *Builder) TransferToken(params TokenTransferParams) (solkit.Instruction, error) {
	destination, err := decodeField("destination", params.Destination)
	if err != nil {
		return solkit.Instruction{}, err
	}
	mint, err := decodeField("mint", params.Mint)
	if err != nil {
		return solkit.Instruction{}, err
	}
	owner, err := decodeField("owner", params.Owner)
	if err != nil {
		return solkit.Instruction{}, err
	}
	if err := requirePositive("amount", params.Amount); err != nil {
		return solkit.Instruction{}, err
	}

	sourceATA, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	if err != nil {
		return solkit.Instruction{}, buildFailed("find source ATA", err)
	}
	destATA, _, err := solana.FindAssociatedTokenAddress(destination, mint)
	if err != nil {
		return solkit.Instruction{}, buildFailed("find destination ATA", err)
	}

	ix, err := b.encoder.TokenTransfer(sourceATA, destATA, owner, params.Amount)
	return finish("token transfer", ix, err)
}

func decodeField(field, value string) (solana.PublicKey, error) {
	if value == "" {
		return solana.PublicKey{}, solkit.FieldError(solkit.ErrCodeMissingField, field, nil)
	}

	pk, err := keys.DecodePublicKey(value)
	if err != nil {
		return solana.PublicKey{}, solkit.FieldError(solkit.ErrCodeInvalidPubkey, field, err)
	}
	return pk, nil
}

func requirePositive(field string, amount uint64) error {
	if amount == 0 {
		return solkit.FieldError(solkit.ErrCodeInvalidAmount, field, fmt.Errorf("must be greater than 0"))
	}
	return nil
}

// finish converts an encoder result into a descriptor, or a build failure
// carrying the encoder's message. No partial descriptor is ever returned.
func finish(op string, ix solana.Instruction, err error) (solkit.Instruction, error) {
	if err != nil {
		return solkit.Instruction{}, buildFailed(op, err)
	}

	data, err := ix.Data()
	if err != nil {
		return solkit.Instruction{}, buildFailed(op, err)
	}

	metas := ix.Accounts()
	accounts := make([]solkit.AccountMeta, len(metas))
	for i, meta := range metas {
		accounts[i] = solkit.AccountMeta{
			PublicKey:  meta.PublicKey,
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}
	}

	return solkit.Instruction{
		ProgramID: ix.ProgramID(),
		Accounts:  accounts,
		Data:      data,
	}, nil
}

func buildFailed(op string, err error) error {
	return solkit.NewError(
		solkit.ErrCodeInstructionBuildFailed,
		fmt.Sprintf("failed to build %s instruction: %v", op, err),
		solkit.ErrInstructionBuildFailed,
	)
}
