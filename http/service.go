package http

import (
	"net/http"

	"github.com/mark3labs/solkit-go"
	"github.com/mark3labs/solkit-go/encoding"
	"github.com/mark3labs/solkit-go/instruction"
	"github.com/mark3labs/solkit-go/keys"
	"github.com/mark3labs/solkit-go/signing"
	"github.com/mark3labs/solkit-go/validation"
)

// Greeting is the data returned by GET /.
const Greeting = "Hello from solkit!"

// Service implements every solkit operation as a function from a decoded
// request to a Result. It is independent of any router and holds no
// per-request state, so one Service is shared by all handlers.
type Service struct {
	builder *instruction.Builder
}

// NewService creates a Service. A nil builder means instruction.DefaultBuilder.
func NewService(builder *instruction.Builder) *Service {
	if builder == nil {
		builder = instruction.DefaultBuilder
	}
	return &Service{builder: builder}
}

// Greet answers GET /.
func (s *Service) Greet() solkit.Result {
	return solkit.Ok(Greeting)
}

// GenerateKeypair answers POST /keypair.
func (s *Service) GenerateKeypair() solkit.Result {
	kp, err := keys.Generate()
	if err != nil {
		return solkit.FailWithStatus(http.StatusInternalServerError, err.Error())
	}

	pubkey, secret := keys.EncodeKeypair(kp)
	return solkit.Ok(KeypairResponse{Pubkey: pubkey, Secret: secret})
}

// GenerateMnemonic answers POST /keypair/mnemonic.
func (s *Service) GenerateMnemonic(req MnemonicRequest) solkit.Result {
	words, err := validation.ParseWordCount("words", req.Words)
	if err != nil {
		return solkit.Fail(err)
	}

	mnemonic, err := keys.NewMnemonic(words)
	if err != nil {
		return solkit.FailWithStatus(http.StatusInternalServerError, err.Error())
	}
	kp, err := keys.FromMnemonic(mnemonic, req.Passphrase, "")
	if err != nil {
		return solkit.FailWithStatus(http.StatusInternalServerError, err.Error())
	}

	pubkey, secret := keys.EncodeKeypair(kp)
	return solkit.Ok(MnemonicResponse{Mnemonic: mnemonic, Pubkey: pubkey, Secret: secret})
}

// RecoverKeypair answers POST /keypair/recover.
func (s *Service) RecoverKeypair(req RecoverRequest) solkit.Result {
	if err := validation.Required(validation.Field{Name: "mnemonic", Value: req.Mnemonic}); err != nil {
		return solkit.Fail(err)
	}

	kp, err := keys.FromMnemonic(req.Mnemonic, req.Passphrase, req.DerivationPath)
	if err != nil {
		return solkit.Fail(err)
	}

	pubkey, secret := keys.EncodeKeypair(kp)
	return solkit.Ok(KeypairResponse{Pubkey: pubkey, Secret: secret})
}

// CreateToken answers POST /token/create.
func (s *Service) CreateToken(req CreateTokenRequest) solkit.Result {
	decimals, err := validation.ParseDecimals("decimals", req.Decimals)
	if err != nil {
		return solkit.Fail(err)
	}

	ix, err := s.builder.CreateMint(instruction.CreateMintParams{
		MintAuthority: req.MintAuthority,
		Mint:          req.Mint,
		Decimals:      decimals,
	})
	if err != nil {
		return solkit.Fail(err)
	}
	return solkit.Ok(encoding.EncodeInstruction(ix))
}

// MintToken answers POST /token/mint.
func (s *Service) MintToken(req MintTokenRequest) solkit.Result {
	amount, err := validation.ParseAmount("amount", req.Amount)
	if err != nil {
		return solkit.Fail(err)
	}

	ix, err := s.builder.MintTo(instruction.MintToParams{
		Mint:        req.Mint,
		Destination: req.Destination,
		Authority:   req.Authority,
		Amount:      amount,
	})
	if err != nil {
		return solkit.Fail(err)
	}
	return solkit.Ok(encoding.EncodeInstruction(ix))
}

// SignMessage answers POST /message/sign.
func (s *Service) SignMessage(req SignMessageRequest) solkit.Result {
	err := validation.Required(
		validation.Field{Name: "message", Value: req.Message},
		validation.Field{Name: "secret", Value: req.Secret},
	)
	if err != nil {
		return solkit.Fail(err)
	}

	signed, err := signing.SignText(req.Message, req.Secret)
	if err != nil {
		return solkit.Fail(err)
	}

	return solkit.Ok(SignMessageResponse{
		Signature: encoding.EncodeSignature(signed.Signature),
		PublicKey: signed.PublicKey.String(),
		Message:   req.Message,
	})
}

// VerifyMessage answers POST /message/verify.
// A signature that does not verify is a success with valid=false.
func (s *Service) VerifyMessage(req VerifyMessageRequest) solkit.Result {
	err := validation.Required(
		validation.Field{Name: "message", Value: req.Message},
		validation.Field{Name: "signature", Value: req.Signature},
		validation.Field{Name: "pubkey", Value: req.Pubkey},
	)
	if err != nil {
		return solkit.Fail(err)
	}

	valid, err := signing.VerifyText(req.Message, req.Signature, req.Pubkey)
	if err != nil {
		return solkit.Fail(err)
	}

	return solkit.Ok(VerifyMessageResponse{
		Valid:   valid,
		Message: req.Message,
		Pubkey:  req.Pubkey,
	})
}

// SendSol answers POST /send/sol.
func (s *Service) SendSol(req SendSolRequest) solkit.Result {
	lamports, err := validation.ParseAmount("lamports", req.Lamports)
	if err != nil {
		return solkit.Fail(err)
	}

	ix, err := s.builder.TransferNative(instruction.TransferParams{
		From:     req.From,
		To:       req.To,
		Lamports: lamports,
	})
	if err != nil {
		return solkit.Fail(err)
	}
	return solkit.Ok(encoding.EncodeTransfer(ix))
}

// SendToken answers POST /send/token.
func (s *Service) SendToken(req SendTokenRequest) solkit.Result {
	amount, err := validation.ParseAmount("amount", req.Amount)
	if err != nil {
		return solkit.Fail(err)
	}

	ix, err := s.builder.TransferToken(instruction.TokenTransferParams{
		Destination: req.Destination,
		Mint:        req.Mint,
		Owner:       req.Owner,
		Amount:      amount,
	})
	if err != nil {
		return solkit.Fail(err)
	}
	return solkit.Ok(encoding.EncodeTokenTransfer(ix))
}
