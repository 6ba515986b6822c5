// Package encoding provides the text encodings solkit exposes to callers.
// It handles base64 for instruction data and signatures, and converts
// instruction descriptors into their JSON wire shapes.
package encoding

import (
	"encoding/base64"
	"fmt"

	"github.com/gagliardetto/solana-go"

	"github.com/mark3labs/solkit-go"
)

// AccountMetaJSON is the wire shape of an account slot on /token/create and /token/mint.
type AccountMetaJSON struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// InstructionJSON is the wire shape of an instruction with full account metadata.
type InstructionJSON struct {
	ProgramID       string            `json:"program_id"`
	Accounts        []AccountMetaJSON `json:"accounts"`
	InstructionData string            `json:"instruction_data"`
}

// TransferJSON is the wire shape of a native transfer: accounts are bare addresses.
type TransferJSON struct {
	ProgramID       string   `json:"program_id"`
	Accounts        []string `json:"accounts"`
	InstructionData string   `json:"instruction_data"`
}

// TokenAccountJSON is the wire shape of an account slot on /send/token.
type TokenAccountJSON struct {
	Pubkey   string `json:"pubkey"`
	IsSigner bool   `json:"isSigner"`
}

// TokenTransferJSON is the wire shape of an SPL token transfer.
type TokenTransferJSON struct {
	ProgramID       string             `json:"program_id"`
	Accounts        []TokenAccountJSON `json:"accounts"`
	InstructionData string             `json:"instruction_data"`
}

// EncodeData converts instruction data to standard base64.
func EncodeData(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeSignature converts a signature to standard base64.
func EncodeSignature(signature solana.Signature) string {
	return base64.StdEncoding.EncodeToString(signature[:])
}

// DecodeSignature converts a base64 signature back to its 64 bytes.
//
// Returns solkit.ErrInvalidEncoding for malformed base64 and
// solkit.ErrInvalidLength when the decoded value is not 64 bytes.
func DecodeSignature(encoded string) (solana.Signature, error) {
	var signature solana.Signature

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return signature, solkit.NewError(solkit.ErrCodeInvalidEncoding, "signature is not valid base64", solkit.ErrInvalidEncoding)
	}

	if len(decoded) != solkit.SignatureSize {
		return signature, solkit.NewError(
			solkit.ErrCodeInvalidLength,
			fmt.Sprintf("signature must be %d bytes, got %d", solkit.SignatureSize, len(decoded)),
			solkit.ErrInvalidLength,
		)
	}

	copy(signature[:], decoded)
	return signature, nil
}

// EncodeInstruction converts an instruction to its full wire shape.
func EncodeInstruction(ix solkit.Instruction) InstructionJSON {
	accounts := make([]AccountMetaJSON, len(ix.Accounts))
	for i, meta := range ix.Accounts {
		accounts[i] = AccountMetaJSON{
			Pubkey:     meta.PublicKey.String(),
			IsSigner:   meta.IsSigner,
			IsWritable: meta.IsWritable,
		}
	}

	return InstructionJSON{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: EncodeData(ix.Data),
	}
}

// EncodeTransfer converts a native transfer to its wire shape with bare account addresses.
func EncodeTransfer(ix solkit.Instruction) TransferJSON {
	accounts := make([]string, len(ix.Accounts))
	for i, meta := range ix.Accounts {
		accounts[i] = meta.PublicKey.String()
	}

	return TransferJSON{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: EncodeData(ix.Data),
	}
}

// EncodeTokenTransfer converts an SPL token transfer to its wire shape.
func EncodeTokenTransfer(ix solkit.Instruction) TokenTransferJSON {
	accounts := make([]TokenAccountJSON, len(ix.Accounts))
	for i, meta := range ix.Accounts {
		accounts[i] = TokenAccountJSON{
			Pubkey:   meta.PublicKey.String(),
			IsSigner: meta.IsSigner,
		}
	}

	return TokenTransferJSON{
		ProgramID:       ix.ProgramID.String(),
		Accounts:        accounts,
		InstructionData: EncodeData(ix.Data),
	}
}
