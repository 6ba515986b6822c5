package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/mark3labs/solkit-go"
	"github.com/mark3labs/solkit-go/encoding"
	"github.com/mark3labs/solkit-go/instruction"
	"github.com/mark3labs/solkit-go/internal/routetest"
	"github.com/mark3labs/solkit-go/signing"
)

func TestService_SignThenVerify(t *testing.T) {
	svc := NewService(nil)

	signed, ok := svc.SignMessage(SignMessageRequest{Message: "round trip", Secret: routetest.AliceSecret}).(solkit.OK)
	if !ok {
		t.Fatal("SignMessage() failed")
	}
	sig := signed.Data.(SignMessageResponse)

	verified, ok := svc.VerifyMessage(VerifyMessageRequest{
		Message:   "round trip",
		Signature: sig.Signature,
		Pubkey:    sig.PublicKey,
	}).(solkit.OK)
	if !ok {
		t.Fatal("VerifyMessage() failed")
	}
	if !verified.Data.(VerifyMessageResponse).Valid {
		t.Error("signature produced by SignMessage did not verify")
	}
}

func TestService_SignMessageMatchesSigningPackage(t *testing.T) {
	svc := NewService(nil)

	result, ok := svc.SignMessage(SignMessageRequest{Message: routetest.Message, Secret: routetest.AliceSecret}).(solkit.OK)
	if !ok {
		t.Fatal("SignMessage() failed")
	}

	direct, err := signing.SignText(routetest.Message, routetest.AliceSecret)
	if err != nil {
		t.Fatalf("SignText() failed: %v", err)
	}
	if got := result.Data.(SignMessageResponse).Signature; got != encoding.EncodeSignature(direct.Signature) {
		t.Errorf("signature = %s, want %s", got, encoding.EncodeSignature(direct.Signature))
	}
}

func TestService_GenerateKeypairIsFresh(t *testing.T) {
	svc := NewService(nil)
	seen := make(map[string]bool)

	for i := 0; i < 16; i++ {
		result, ok := svc.GenerateKeypair().(solkit.OK)
		if !ok {
			t.Fatal("GenerateKeypair() failed")
		}
		kp := result.Data.(KeypairResponse)
		if seen[kp.Pubkey] {
			t.Fatalf("duplicate keypair %s", kp.Pubkey)
		}
		seen[kp.Pubkey] = true
	}
}

type brokenEncoder struct{ instruction.ProgramEncoder }

func (brokenEncoder) InitializeMint(mint, mintAuthority solana.PublicKey, decimals uint8) (solana.Instruction, error) {
	return nil, errors.New("decimals rejected")
}

func TestService_BuildFailureIsBadRequest(t *testing.T) {
	svc := NewService(instruction.NewBuilder(brokenEncoder{}))

	result := svc.CreateToken(CreateTokenRequest{
		MintAuthority: routetest.AlicePubkey,
		Mint:          routetest.BobPubkey,
		Decimals:      json.Number("6"),
	})

	failure, ok := result.(solkit.Failure)
	if !ok {
		t.Fatalf("expected Failure, got %T", result)
	}
	if failure.StatusCode() != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", failure.StatusCode())
	}
	if failure.Message != "failed to build initialize mint instruction: decimals rejected" {
		t.Errorf("message = %q", failure.Message)
	}
}

func TestService_TransferToSelfAllowed(t *testing.T) {
	svc := NewService(nil)

	result := svc.SendSol(SendSolRequest{From: routetest.AlicePubkey, To: routetest.AlicePubkey, Lamports: "1"})
	success, ok := result.(solkit.OK)
	if !ok {
		t.Fatalf("expected OK, got %+v", result)
	}
	accounts := success.Data.(encoding.TransferJSON).Accounts
	if len(accounts) != 2 || accounts[0] != accounts[1] {
		t.Errorf("unexpected accounts %v", accounts)
	}
}
