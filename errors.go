package solkit

import (
	"errors"
	"fmt"
)

// Standard solkit error definitions

var (
	// ErrInvalidEncoding indicates malformed base58 or base64 input.
	ErrInvalidEncoding = errors.New("solkit: invalid encoding")

	// ErrInvalidLength indicates a key or signature with the wrong byte count.
	ErrInvalidLength = errors.New("solkit: invalid length")

	// ErrInvalidKeyMaterial indicates key bytes that do not form a valid Ed25519 keypair.
	ErrInvalidKeyMaterial = errors.New("solkit: invalid key material")

	// ErrInvalidPubkey indicates a public key field that failed to decode.
	ErrInvalidPubkey = errors.New("solkit: invalid public key")

	// ErrInvalidAmount indicates a zero, negative or out-of-range numeric field.
	ErrInvalidAmount = errors.New("solkit: invalid amount")

	// ErrInstructionBuildFailed indicates the instruction encoder rejected its parameters.
	ErrInstructionBuildFailed = errors.New("solkit: instruction build failed")

	// ErrMissingField indicates an empty required request field.
	ErrMissingField = errors.New("solkit: missing required field")

	// ErrInvalidRequest indicates a request body that could not be parsed.
	ErrInvalidRequest = errors.New("solkit: invalid request")
)

// ErrorCode classifies an Error for callers that need more than the message.
type ErrorCode string

const (
	ErrCodeInvalidEncoding        ErrorCode = "INVALID_ENCODING"
	ErrCodeInvalidLength          ErrorCode = "INVALID_LENGTH"
	ErrCodeInvalidKeyMaterial     ErrorCode = "INVALID_KEY_MATERIAL"
	ErrCodeInvalidPubkey          ErrorCode = "INVALID_PUBKEY"
	ErrCodeInvalidAmount          ErrorCode = "INVALID_AMOUNT"
	ErrCodeInstructionBuildFailed ErrorCode = "INSTRUCTION_BUILD_FAILED"
	ErrCodeMissingField           ErrorCode = "MISSING_FIELD"
	ErrCodeInvalidRequest         ErrorCode = "INVALID_REQUEST"
)

// Error is a coded validation or build failure.
// Message is what callers see; Err carries the sentinel (and any cause) for errors.Is.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error
	Details map[string]interface{}
}

// NewError creates an Error with the given code, message and underlying error.
func NewError(code ErrorCode, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
		Details: make(map[string]interface{}),
	}
}

// WithDetails attaches a key/value detail and returns the same error for chaining.
func (e *Error) WithDetails(key string, value interface{}) *Error {
	e.Details[key] = value
	return e
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Field returns the request field the error refers to, if one was recorded.
func (e *Error) Field() string {
	field, _ := e.Details["field"].(string)
	return field
}

// sentinels maps codes to the sentinel each coded error unwraps to.
var sentinels = map[ErrorCode]error{
	ErrCodeInvalidEncoding:        ErrInvalidEncoding,
	ErrCodeInvalidLength:          ErrInvalidLength,
	ErrCodeInvalidKeyMaterial:     ErrInvalidKeyMaterial,
	ErrCodeInvalidPubkey:          ErrInvalidPubkey,
	ErrCodeInvalidAmount:          ErrInvalidAmount,
	ErrCodeInstructionBuildFailed: ErrInstructionBuildFailed,
	ErrCodeMissingField:           ErrMissingField,
	ErrCodeInvalidRequest:         ErrInvalidRequest,
}

// Errorf builds a coded error whose message is formatted from format and args
// and which unwraps to the sentinel for code.
func Errorf(code ErrorCode, format string, args ...interface{}) *Error {
	return NewError(code, fmt.Sprintf(format, args...), sentinels[code])
}

// FieldError builds a coded error about a single request field.
func FieldError(code ErrorCode, field string, cause error) *Error {
	var msg string
	switch code {
	case ErrCodeMissingField:
		msg = fmt.Sprintf("missing required field: %s", field)
	case ErrCodeInvalidPubkey:
		msg = fmt.Sprintf("invalid public key for field %s", field)
	case ErrCodeInvalidAmount:
		msg = fmt.Sprintf("invalid amount for field %s", field)
	default:
		msg = fmt.Sprintf("invalid field %s", field)
	}
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return NewError(code, msg, joinCause(sentinels[code], cause)).WithDetails("field", field)
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func joinCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return errors.Join(sentinel, cause)
}
