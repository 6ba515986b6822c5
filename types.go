package solkit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gagliardetto/solana-go"
)

// Keypair is an Ed25519 keypair in the ledger's convention:
// a 64-byte private key whose last 32 bytes are the public key.
type Keypair struct {
	// PublicKey is the 32-byte Ed25519 public key.
	PublicKey solana.PublicKey

	// PrivateKey is the 64-byte seed||public key form.
	PrivateKey solana.PrivateKey
}

// AccountMeta describes one account slot referenced by an instruction.
type AccountMeta struct {
	PublicKey  solana.PublicKey
	IsSigner   bool
	IsWritable bool
}

// Instruction is a fully encoded instruction descriptor: the program it targets,
// the accounts it touches in ABI order, and the opaque data payload.
type Instruction struct {
	ProgramID solana.PublicKey
	Accounts  []AccountMeta
	Data      []byte
}

// SignedMessage is a message together with its detached signature and signer.
type SignedMessage struct {
	Message   []byte
	Signature solana.Signature
	PublicKey solana.PublicKey
}

// Result is the outcome of one request: either OK with a payload or Failure with a message.
// It marshals to the uniform response envelope.
type Result interface {
	// StatusCode returns the HTTP status the result is sent with.
	StatusCode() int

	isResult()
}

// OK is the success variant of Result.
type OK struct {
	Data interface{}
}

// Failure is the error variant of Result.
type Failure struct {
	Status  int
	Message string
}

// Ok wraps data in a success result.
func Ok(data interface{}) Result {
	return OK{Data: data}
}

// Fail wraps err in a 400 failure result.
func Fail(err error) Result {
	return Failure{Status: http.StatusBadRequest, Message: err.Error()}
}

// FailWithStatus wraps a message in a failure result sent with the given status.
func FailWithStatus(status int, message string) Result {
	return Failure{Status: status, Message: message}
}

func (OK) isResult()      {}
func (Failure) isResult() {}

func (OK) StatusCode() int { return http.StatusOK }

func (f Failure) StatusCode() int {
	if f.Status == 0 {
		return http.StatusBadRequest
	}
	return f.Status
}

func (r OK) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool        `json:"success"`
		Data    interface{} `json:"data"`
	}{true, r.Data})
}

func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{false, f.Message})
}

// Envelope is the decoded form of a response body, as seen by clients.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Decode unmarshals the success payload into v.
// It returns an error carrying the envelope's message when the envelope is a failure.
func (e Envelope) Decode(v interface{}) error {
	if !e.Success {
		return errors.New(e.Error)
	}
	return json.Unmarshal(e.Data, v)
}
