// Package routetest holds the endpoint table every solkit router is tested
// against, so the stdlib, chi and gin routers are held to identical behavior.
package routetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mark3labs/solkit-go"
	"github.com/mark3labs/solkit-go/keys"
)

// Fixed test keys derived from the seeds 0x00..0x1f and 0x20..0x3f.
// DO NOT use in production.
const (
	AlicePubkey = "FAe4sisG95oZ42w7buUn5qEE4TAnfTTFPiguZUHmhiF"
	AliceSecret = "1GMkH3brNXiNNs1tiFZHu4yZSRrzJwxi5wB9bHFtMikjwpAW9DMZzU2Pqakc5it8X3N5vPmqdN7KF4CCUpmKhq"
	BobPubkey   = "3ogUn1GNXoASaRbxPNeVJnVv5rG4EPBtmQmX61jVorUe"

	USDCMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

	// Associated token accounts of Alice and Bob for USDCMint.
	AliceUSDC = "hkcktF2Akp3vj8pbBVJuxJfk5m41i4t4TSVLx2VoNHT"
	BobUSDC   = "BfYRfw3oHvdFX4v3CyBoiZmPK6p32nS4uRxGfiqVvX2m"

	// Ed25519 signature of Message under AliceSecret, base64.
	Message   = "Hello, Solana!"
	Signature = "t4Gj/cGduAGmbOlwM8sY/j9rqoge1Zbek3r+WN+hBMpcb3LHdk0jeSXJjl0+cF/5KTF4PGp2i3iN7EocEuaiBA=="

	// Mnemonic is the all-zero-entropy BIP39 test phrase.
	Mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
)

// Case is one request against the API and the response it must produce.
type Case struct {
	Name       string
	Method     string
	Path       string
	Body       string
	WantStatus int

	// WantBody, when set, must equal the response body exactly.
	WantBody string

	// WantError, when set, must equal the envelope's error message.
	WantError string

	// Check, when set, inspects the decoded envelope.
	Check func(t *testing.T, env solkit.Envelope)
}

// Cases is the endpoint table.
var Cases = []Case{
	{
		Name:       "greeting",
		Method:     http.MethodGet,
		Path:       "/",
		WantStatus: http.StatusOK,
		WantBody:   `{"success":true,"data":"Hello from solkit!"}`,
	},
	{
		Name:       "generate keypair",
		Method:     http.MethodPost,
		Path:       "/keypair",
		WantStatus: http.StatusOK,
		Check:      checkKeypair,
	},
	{
		Name:       "create token",
		Method:     http.MethodPost,
		Path:       "/token/create",
		Body:       `{"mintAuthority":"` + AlicePubkey + `","mint":"` + BobPubkey + `","decimals":9}`,
		WantStatus: http.StatusOK,
		WantBody: `{"success":true,"data":{"program_id":"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA","accounts":[` +
			`{"pubkey":"` + BobPubkey + `","is_signer":false,"is_writable":true},` +
			`{"pubkey":"SysvarRent111111111111111111111111111111111","is_signer":false,"is_writable":false}],` +
			`"instruction_data":"AAkDoQe/884Qvh1w3RjnS8CZZ+TWMJulDV8d3IZkElUxuAA="}}`,
	},
	{
		Name:       "create token missing mint",
		Method:     http.MethodPost,
		Path:       "/token/create",
		Body:       `{"mintAuthority":"` + AlicePubkey + `","decimals":6}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "missing required field: mint",
	},
	{
		Name:       "create token decimals out of range",
		Method:     http.MethodPost,
		Path:       "/token/create",
		Body:       `{"mintAuthority":"` + AlicePubkey + `","mint":"` + BobPubkey + `","decimals":256}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid amount for field decimals: 256 is out of range for u8",
	},
	{
		Name:       "create token bad authority",
		Method:     http.MethodPost,
		Path:       "/token/create",
		Body:       `{"mintAuthority":"not-base58!!","mint":"` + BobPubkey + `","decimals":6}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid public key for field mintAuthority: invalid base58 encoding",
	},
	{
		Name:       "mint token",
		Method:     http.MethodPost,
		Path:       "/token/mint",
		Body:       `{"mint":"` + BobPubkey + `","destination":"` + AliceUSDC + `","authority":"` + AlicePubkey + `","amount":1000000}`,
		WantStatus: http.StatusOK,
		WantBody: `{"success":true,"data":{"program_id":"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA","accounts":[` +
			`{"pubkey":"` + BobPubkey + `","is_signer":false,"is_writable":true},` +
			`{"pubkey":"` + AliceUSDC + `","is_signer":false,"is_writable":true},` +
			`{"pubkey":"` + AlicePubkey + `","is_signer":true,"is_writable":false}],` +
			`"instruction_data":"B0BCDwAAAAAA"}}`,
	},
	{
		Name:       "mint token zero amount",
		Method:     http.MethodPost,
		Path:       "/token/mint",
		Body:       `{"mint":"` + BobPubkey + `","destination":"` + AliceUSDC + `","authority":"` + AlicePubkey + `","amount":0}`,
		WantStatus: http.StatusOK,
		WantBody: `{"success":true,"data":{"program_id":"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA","accounts":[` +
			`{"pubkey":"` + BobPubkey + `","is_signer":false,"is_writable":true},` +
			`{"pubkey":"` + AliceUSDC + `","is_signer":false,"is_writable":true},` +
			`{"pubkey":"` + AlicePubkey + `","is_signer":true,"is_writable":false}],` +
			`"instruction_data":"BwAAAAAAAAAA"}}`,
	},
	{
		Name:       "mint token negative amount",
		Method:     http.MethodPost,
		Path:       "/token/mint",
		Body:       `{"mint":"` + BobPubkey + `","destination":"` + AliceUSDC + `","authority":"` + AlicePubkey + `","amount":-1}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid amount for field amount: -1 is negative",
	},
	{
		Name:       "sign message",
		Method:     http.MethodPost,
		Path:       "/message/sign",
		Body:       `{"message":"` + Message + `","secret":"` + AliceSecret + `"}`,
		WantStatus: http.StatusOK,
		WantBody:   `{"success":true,"data":{"signature":"` + Signature + `","public_key":"` + AlicePubkey + `","message":"` + Message + `"}}`,
	},
	{
		Name:       "sign message malformed secret",
		Method:     http.MethodPost,
		Path:       "/message/sign",
		Body:       `{"message":"` + Message + `","secret":"not-base58!!"}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid base58 encoding",
	},
	{
		Name:       "sign message public key as secret",
		Method:     http.MethodPost,
		Path:       "/message/sign",
		Body:       `{"message":"` + Message + `","secret":"` + AlicePubkey + `"}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "secret key must be 64 bytes, got 32",
	},
	{
		Name:       "sign message missing message",
		Method:     http.MethodPost,
		Path:       "/message/sign",
		Body:       `{"secret":"` + AliceSecret + `"}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "missing required field: message",
	},
	{
		Name:       "verify message",
		Method:     http.MethodPost,
		Path:       "/message/verify",
		Body:       `{"message":"` + Message + `","signature":"` + Signature + `","pubkey":"` + AlicePubkey + `"}`,
		WantStatus: http.StatusOK,
		WantBody:   `{"success":true,"data":{"valid":true,"message":"` + Message + `","pubkey":"` + AlicePubkey + `"}}`,
	},
	{
		Name:       "verify message wrong key",
		Method:     http.MethodPost,
		Path:       "/message/verify",
		Body:       `{"message":"` + Message + `","signature":"` + Signature + `","pubkey":"` + BobPubkey + `"}`,
		WantStatus: http.StatusOK,
		WantBody:   `{"success":true,"data":{"valid":false,"message":"` + Message + `","pubkey":"` + BobPubkey + `"}}`,
	},
	{
		Name:       "verify message short signature",
		Method:     http.MethodPost,
		Path:       "/message/verify",
		Body:       `{"message":"` + Message + `","signature":"AAAA","pubkey":"` + AlicePubkey + `"}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "signature must be 64 bytes, got 3",
	},
	{
		Name:       "send sol",
		Method:     http.MethodPost,
		Path:       "/send/sol",
		Body:       `{"from":"` + AlicePubkey + `","to":"` + BobPubkey + `","lamports":1000}`,
		WantStatus: http.StatusOK,
		WantBody: `{"success":true,"data":{"program_id":"11111111111111111111111111111111",` +
			`"accounts":["` + AlicePubkey + `","` + BobPubkey + `"],"instruction_data":"AgAAAOgDAAAAAAAA"}}`,
	},
	{
		Name:       "send sol trailing data",
		Method:     http.MethodPost,
		Path:       "/send/sol",
		Body:       `{"from":"` + AlicePubkey + `","to":"` + BobPubkey + `","lamports":1000} garbage`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid request body",
	},
	{
		Name:       "send sol zero lamports",
		Method:     http.MethodPost,
		Path:       "/send/sol",
		Body:       `{"from":"` + AlicePubkey + `","to":"` + BobPubkey + `","lamports":0}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid amount for field lamports: must be greater than 0",
	},
	{
		Name:       "send sol missing lamports",
		Method:     http.MethodPost,
		Path:       "/send/sol",
		Body:       `{"from":"` + AlicePubkey + `","to":"` + BobPubkey + `"}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "missing required field: lamports",
	},
	{
		Name:       "send token",
		Method:     http.MethodPost,
		Path:       "/send/token",
		Body:       `{"destination":"` + BobPubkey + `","mint":"` + USDCMint + `","owner":"` + AlicePubkey + `","amount":500}`,
		WantStatus: http.StatusOK,
		WantBody: `{"success":true,"data":{"program_id":"TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA","accounts":[` +
			`{"pubkey":"` + AliceUSDC + `","isSigner":false},` +
			`{"pubkey":"` + BobUSDC + `","isSigner":false},` +
			`{"pubkey":"` + AlicePubkey + `","isSigner":true}],` +
			`"instruction_data":"A/QBAAAAAAAA"}}`,
	},
	{
		Name:       "recover keypair",
		Method:     http.MethodPost,
		Path:       "/keypair/recover",
		Body:       `{"mnemonic":"` + Mnemonic + `"}`,
		WantStatus: http.StatusOK,
		Check:      checkPubkey("EHqmfkN89RJ7Y33CXM6uCzhVeuywHoJXZZLszBHHZy7o"),
	},
	{
		Name:       "recover keypair with path",
		Method:     http.MethodPost,
		Path:       "/keypair/recover",
		Body:       `{"mnemonic":"` + Mnemonic + `","derivation_path":"m/44'/501'/0'/0'"}`,
		WantStatus: http.StatusOK,
		Check:      checkPubkey("HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk"),
	},
	{
		Name:       "recover keypair bad mnemonic",
		Method:     http.MethodPost,
		Path:       "/keypair/recover",
		Body:       `{"mnemonic":"abandon abandon abandon"}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid mnemonic phrase",
	},
	{
		Name:       "generate mnemonic",
		Method:     http.MethodPost,
		Path:       "/keypair/mnemonic",
		Body:       `{"words":24}`,
		WantStatus: http.StatusOK,
		Check:      checkMnemonic(24),
	},
	{
		Name:       "generate mnemonic without body",
		Method:     http.MethodPost,
		Path:       "/keypair/mnemonic",
		WantStatus: http.StatusOK,
		Check:      checkMnemonic(12),
	},
	{
		Name:       "generate mnemonic bad word count",
		Method:     http.MethodPost,
		Path:       "/keypair/mnemonic",
		Body:       `{"words":18}`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid amount for field words: must be 12 or 24, got 18",
	},
	{
		Name:       "malformed JSON",
		Method:     http.MethodPost,
		Path:       "/send/sol",
		Body:       `{"from":`,
		WantStatus: http.StatusBadRequest,
		WantError:  "invalid request body",
	},
	{
		Name:       "unknown route",
		Method:     http.MethodGet,
		Path:       "/does/not/exist",
		WantStatus: http.StatusNotFound,
		WantError:  "route not found: GET /does/not/exist",
	},
	{
		Name:       "wrong method",
		Method:     http.MethodGet,
		Path:       "/keypair",
		WantStatus: http.StatusMethodNotAllowed,
		WantError:  "method GET not allowed on /keypair",
	},
}

// Run sends every case in Cases to handler.
func Run(t *testing.T, handler http.Handler) {
	t.Helper()

	for _, tc := range Cases {
		t.Run(tc.Name, func(t *testing.T) {
			req := httptest.NewRequest(tc.Method, tc.Path, strings.NewReader(tc.Body))
			if tc.Body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.WantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.WantStatus, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			if tc.WantBody != "" && rec.Body.String() != tc.WantBody {
				t.Errorf("body =\n%s\nwant\n%s", rec.Body.String(), tc.WantBody)
			}

			var env solkit.Envelope
			if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
				t.Fatalf("response is not an envelope: %v", err)
			}
			if env.Success != (tc.WantStatus == http.StatusOK) {
				t.Errorf("success = %v for status %d", env.Success, tc.WantStatus)
			}
			if tc.WantError != "" && env.Error != tc.WantError {
				t.Errorf("error = %q, want %q", env.Error, tc.WantError)
			}
			if tc.Check != nil {
				tc.Check(t, env)
			}
		})
	}
}

type keypairData struct {
	Mnemonic string `json:"mnemonic"`
	Pubkey   string `json:"pubkey"`
	Secret   string `json:"secret"`
}

func decodeKeypair(t *testing.T, env solkit.Envelope) keypairData {
	t.Helper()

	var data keypairData
	if err := env.Decode(&data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}

	kp, err := keys.DecodePrivateKey(data.Secret)
	if err != nil {
		t.Fatalf("secret does not decode: %v", err)
	}
	if kp.PublicKey.String() != data.Pubkey {
		t.Errorf("secret derives %s, response says %s", kp.PublicKey, data.Pubkey)
	}
	return data
}

func checkKeypair(t *testing.T, env solkit.Envelope) {
	decodeKeypair(t, env)
}

func checkPubkey(want string) func(*testing.T, solkit.Envelope) {
	return func(t *testing.T, env solkit.Envelope) {
		if got := decodeKeypair(t, env).Pubkey; got != want {
			t.Errorf("pubkey = %s, want %s", got, want)
		}
	}
}

func checkMnemonic(words int) func(*testing.T, solkit.Envelope) {
	return func(t *testing.T, env solkit.Envelope) {
		data := decodeKeypair(t, env)
		if n := len(strings.Fields(data.Mnemonic)); n != words {
			t.Fatalf("mnemonic has %d words, want %d", n, words)
		}

		kp, err := keys.FromMnemonic(data.Mnemonic, "", "")
		if err != nil {
			t.Fatalf("mnemonic does not recover: %v", err)
		}
		if kp.PublicKey.String() != data.Pubkey {
			t.Errorf("mnemonic recovers %s, response says %s", kp.PublicKey, data.Pubkey)
		}
	}
}
