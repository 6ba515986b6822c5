package http

import "encoding/json"

// Numeric request fields are json.Number so that range and sign checks
// report InvalidAmount instead of a generic decode failure.

type CreateTokenRequest struct {
	MintAuthority string      `json:"mintAuthority"`
	Mint          string      `json:"mint"`
	Decimals      json.Number `json:"decimals"`
}

type MintTokenRequest struct {
	Mint        string      `json:"mint"`
	Destination string      `json:"destination"`
	Authority   string      `json:"authority"`
	Amount      json.Number `json:"amount"`
}

type SignMessageRequest struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

type VerifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	Pubkey    string `json:"pubkey"`
}

type SendSolRequest struct {
	From     string      `json:"from"`
	To       string      `json:"to"`
	Lamports json.Number `json:"lamports"`
}

type SendTokenRequest struct {
	Destination string      `json:"destination"`
	Mint        string      `json:"mint"`
	Owner       string      `json:"owner"`
	Amount      json.Number `json:"amount"`
}

type MnemonicRequest struct {
	Words      json.Number `json:"words"`
	Passphrase string      `json:"passphrase"`
}

type RecoverRequest struct {
	Mnemonic       string `json:"mnemonic"`
	Passphrase     string `json:"passphrase"`
	DerivationPath string `json:"derivation_path"`
}

// KeypairResponse is the data of /keypair and /keypair/recover.
type KeypairResponse struct {
	Pubkey string `json:"pubkey"`
	Secret string `json:"secret"`
}

// MnemonicResponse is the data of /keypair/mnemonic.
type MnemonicResponse struct {
	Mnemonic string `json:"mnemonic"`
	Pubkey   string `json:"pubkey"`
	Secret   string `json:"secret"`
}

// SignMessageResponse is the data of /message/sign.
type SignMessageResponse struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

// VerifyMessageResponse is the data of /message/verify.
type VerifyMessageResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
	Pubkey  string `json:"pubkey"`
}
