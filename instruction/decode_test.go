package instruction

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"

	"github.com/mark3labs/solkit-go"
)

func accountMetas(ix solkit.Instruction) []*solana.AccountMeta {
	metas := make([]*solana.AccountMeta, 0, len(ix.Accounts))
	for _, a := range ix.Accounts {
		metas = append(metas, solana.NewAccountMeta(a.PublicKey, a.IsWritable, a.IsSigner))
	}
	return metas
}

func decodeToken(t *testing.T, ix solkit.Instruction) *token.Instruction {
	t.Helper()
	if !ix.ProgramID.Equals(solana.TokenProgramID) {
		t.Fatalf("program id = %s, want token program", ix.ProgramID)
	}
	decoded, err := token.DecodeInstruction(accountMetas(ix), ix.Data)
	if err != nil {
		t.Fatalf("failed to decode token instruction: %v", err)
	}
	return decoded
}

func TestCreateMint_Decodes(t *testing.T) {
	ix, err := DefaultBuilder.CreateMint(CreateMintParams{MintAuthority: alice, Mint: usdc, Decimals: 9})
	if err != nil {
		t.Fatalf("CreateMint() failed: %v", err)
	}

	decoded := decodeToken(t, ix)
	initMint, ok := decoded.Impl.(*token.InitializeMint)
	if !ok {
		t.Fatalf("decoded %T, want *token.InitializeMint", decoded.Impl)
	}
	if *initMint.Decimals != 9 {
		t.Errorf("decimals = %d, want 9", *initMint.Decimals)
	}
	if initMint.MintAuthority.String() != alice {
		t.Errorf("mint authority = %s, want %s", initMint.MintAuthority, alice)
	}
	if initMint.FreezeAuthority != nil {
		t.Errorf("freeze authority = %s, want none", initMint.FreezeAuthority)
	}
	if got := initMint.GetMintAccount().PublicKey.String(); got != usdc {
		t.Errorf("mint = %s, want %s", got, usdc)
	}
}

func TestMintTo_Decodes(t *testing.T) {
	ix, err := DefaultBuilder.MintTo(MintToParams{Mint: usdc, Destination: bobUSDC, Authority: alice, Amount: 42})
	if err != nil {
		t.Fatalf("MintTo() failed: %v", err)
	}

	mintTo, ok := decodeToken(t, ix).Impl.(*token.MintTo)
	if !ok {
		t.Fatal("expected a MintTo instruction")
	}
	if *mintTo.Amount != 42 {
		t.Errorf("amount = %d, want 42", *mintTo.Amount)
	}
	if got := mintTo.GetAuthorityAccount().PublicKey.String(); got != alice {
		t.Errorf("authority = %s, want %s", got, alice)
	}
	if got := mintTo.GetDestinationAccount().PublicKey.String(); got != bobUSDC {
		t.Errorf("destination = %s, want %s", got, bobUSDC)
	}
}

func TestTransferToken_Decodes(t *testing.T) {
	ix, err := DefaultBuilder.TransferToken(TokenTransferParams{Destination: bob, Mint: usdc, Owner: alice, Amount: 7})
	if err != nil {
		t.Fatalf("TransferToken() failed: %v", err)
	}

	transfer, ok := decodeToken(t, ix).Impl.(*token.Transfer)
	if !ok {
		t.Fatal("expected a Transfer instruction")
	}
	if *transfer.Amount != 7 {
		t.Errorf("amount = %d, want 7", *transfer.Amount)
	}
	if got := transfer.GetOwnerAccount().PublicKey.String(); got != alice {
		t.Errorf("owner = %s, want %s", got, alice)
	}
	if got := transfer.GetSourceAccount().PublicKey.String(); got != aliceUSDC {
		t.Errorf("source = %s, want %s", got, aliceUSDC)
	}
}

func TestTransferNative_Decodes(t *testing.T) {
	ix, err := DefaultBuilder.TransferNative(TransferParams{From: alice, To: bob, Lamports: 1_000_000_000})
	if err != nil {
		t.Fatalf("TransferNative() failed: %v", err)
	}
	if !ix.ProgramID.Equals(solana.SystemProgramID) {
		t.Fatalf("program id = %s, want system program", ix.ProgramID)
	}

	decoded, err := system.DecodeInstruction(accountMetas(ix), ix.Data)
	if err != nil {
		t.Fatalf("failed to decode system instruction: %v", err)
	}
	transfer, ok := decoded.Impl.(*system.Transfer)
	if !ok {
		t.Fatal("expected a system Transfer instruction")
	}
	if *transfer.Lamports != 1_000_000_000 {
		t.Errorf("lamports = %d, want 1000000000", *transfer.Lamports)
	}
	if got := transfer.GetFundingAccount().PublicKey.String(); got != alice {
		t.Errorf("funding account = %s, want %s", got, alice)
	}
	if got := transfer.GetRecipientAccount().PublicKey.String(); got != bob {
		t.Errorf("recipient = %s, want %s", got, bob)
	}
}
