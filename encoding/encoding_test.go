package encoding

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/gagliardetto/solana-go"

	"github.com/mark3labs/solkit-go"
)

var (
	testFrom = solana.MustPublicKeyFromBase58("FAe4sisG95oZ42w7buUn5qEE4TAnfTTFPiguZUHmhiF")
	testTo   = solana.MustPublicKeyFromBase58("3ogUn1GNXoASaRbxPNeVJnVv5rG4EPBtmQmX61jVorUe")
)

func testInstruction() solkit.Instruction {
	return solkit.Instruction{
		ProgramID: solkit.SystemProgramID,
		Accounts: []solkit.AccountMeta{
			{PublicKey: testFrom, IsSigner: true, IsWritable: true},
			{PublicKey: testTo, IsSigner: false, IsWritable: true},
		},
		Data: []byte{2, 0, 0, 0, 0xe8, 0x03, 0, 0, 0, 0, 0, 0},
	}
}

func TestEncodeData(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"empty", []byte{}, ""},
		{"transfer of 1000 lamports", []byte{2, 0, 0, 0, 0xe8, 0x03, 0, 0, 0, 0, 0, 0}, "AgAAAOgDAAAAAAAA"},
		{"mint to", []byte{7, 0x40, 0x42, 0x0f, 0, 0, 0, 0, 0}, "B0BCDwAAAAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EncodeData(tt.data); got != tt.want {
				t.Errorf("EncodeData() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeSignature(t *testing.T) {
	valid := make([]byte, 64)
	for i := range valid {
		valid[i] = byte(i)
	}

	tests := []struct {
		name     string
		input    string
		wantErr  error
		wantCode solkit.ErrorCode
	}{
		{
			name:  "valid signature",
			input: base64.StdEncoding.EncodeToString(valid),
		},
		{
			name:     "invalid base64",
			input:    "not base64!!",
			wantErr:  solkit.ErrInvalidEncoding,
			wantCode: solkit.ErrCodeInvalidEncoding,
		},
		{
			name:     "too short",
			input:    base64.StdEncoding.EncodeToString(valid[:63]),
			wantErr:  solkit.ErrInvalidLength,
			wantCode: solkit.ErrCodeInvalidLength,
		},
		{
			name:     "too long",
			input:    base64.StdEncoding.EncodeToString(append(valid, 0)),
			wantErr:  solkit.ErrInvalidLength,
			wantCode: solkit.ErrCodeInvalidLength,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig, err := DecodeSignature(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if solkit.CodeOf(err) != tt.wantCode {
					t.Errorf("code = %v, want %v", solkit.CodeOf(err), tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if EncodeSignature(sig) != tt.input {
				t.Errorf("round trip = %s, want %s", EncodeSignature(sig), tt.input)
			}
		})
	}
}

func TestEncodeInstruction(t *testing.T) {
	data, err := json.Marshal(EncodeInstruction(testInstruction()))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"program_id":"11111111111111111111111111111111","accounts":[` +
		`{"pubkey":"FAe4sisG95oZ42w7buUn5qEE4TAnfTTFPiguZUHmhiF","is_signer":true,"is_writable":true},` +
		`{"pubkey":"3ogUn1GNXoASaRbxPNeVJnVv5rG4EPBtmQmX61jVorUe","is_signer":false,"is_writable":true}],` +
		`"instruction_data":"AgAAAOgDAAAAAAAA"}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestEncodeTransfer(t *testing.T) {
	data, err := json.Marshal(EncodeTransfer(testInstruction()))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	want := `{"program_id":"11111111111111111111111111111111","accounts":[` +
		`"FAe4sisG95oZ42w7buUn5qEE4TAnfTTFPiguZUHmhiF","3ogUn1GNXoASaRbxPNeVJnVv5rG4EPBtmQmX61jVorUe"],` +
		`"instruction_data":"AgAAAOgDAAAAAAAA"}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestEncodeTokenTransfer(t *testing.T) {
	data, err := json.Marshal(EncodeTokenTransfer(testInstruction()))
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	if !strings.Contains(string(data), `"isSigner":true`) {
		t.Errorf("expected camelCase isSigner field, got %s", data)
	}
	if strings.Contains(string(data), "is_writable") {
		t.Errorf("token transfer accounts must not carry is_writable, got %s", data)
	}
}
