package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	httpsolkit "github.com/mark3labs/solkit-go/http"
	"github.com/mark3labs/solkit-go/keys"
)

// Keygen file for the seed 0x00..0x1f.
const aliceKeygenJSON = `[0,1,2,3,4,5,6,7,8,9,10,11,12,13,14,15,16,17,18,19,20,21,22,23,24,25,26,27,28,29,30,31,` +
	`3,161,7,191,243,206,16,190,29,112,221,24,231,75,192,153,103,228,214,48,155,165,13,95,29,220,134,100,18,85,49,184]`

func init() {
	gin.SetMode(gin.TestMode)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--env-file", ""}, args...))

	err := root.Execute()
	return out.String(), err
}

func TestKeygen_Default(t *testing.T) {
	out, err := execute(t, "keygen")
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "pubkey: ") || !strings.HasPrefix(lines[1], "secret: ") {
		t.Fatalf("unexpected output:\n%s", out)
	}

	kp, err := keys.DecodePrivateKey(strings.TrimPrefix(lines[1], "secret: "))
	if err != nil {
		t.Fatalf("printed secret does not decode: %v", err)
	}
	if kp.PublicKey.String() != strings.TrimPrefix(lines[0], "pubkey: ") {
		t.Error("printed pubkey does not match secret")
	}
}

func TestKeygen_JSON(t *testing.T) {
	out, err := execute(t, "keygen", "--json")
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	if _, err := keys.ParseKeygenJSON([]byte(out)); err != nil {
		t.Errorf("output is not a keygen file: %v\n%s", err, out)
	}
}

func TestKeygen_Mnemonic(t *testing.T) {
	out, err := execute(t, "keygen", "--words", "24")
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("unexpected output:\n%s", out)
	}
	mnemonic := strings.TrimPrefix(lines[0], "mnemonic: ")
	if n := len(strings.Fields(mnemonic)); n != 24 {
		t.Errorf("mnemonic has %d words", n)
	}

	kp, err := keys.FromMnemonic(mnemonic, "", "")
	if err != nil {
		t.Fatalf("mnemonic does not recover: %v", err)
	}
	if lines[1] != "pubkey: "+kp.PublicKey.String() {
		t.Errorf("pubkey line %q does not match mnemonic", lines[1])
	}
}

func TestKeygen_BadWordCount(t *testing.T) {
	if _, err := execute(t, "keygen", "--words", "13"); err == nil {
		t.Error("expected error for 13 words")
	}
}

func TestKeygen_VerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "id.json")
	if err := os.WriteFile(path, []byte(aliceKeygenJSON), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "keygen", "--verify-file", path)
	if err != nil {
		t.Fatalf("keygen failed: %v", err)
	}
	if strings.TrimSpace(out) != "FAe4sisG95oZ42w7buUn5qEE4TAnfTTFPiguZUHmhiF" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestKeygen_VerifyFileMissing(t *testing.T) {
	if _, err := execute(t, "keygen", "--verify-file", filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBuildHandler(t *testing.T) {
	for _, router := range []string{httpsolkit.RouterChi, httpsolkit.RouterGin, httpsolkit.RouterStd} {
		for _, withMCP := range []bool{false, true} {
			config := httpsolkit.DefaultConfig()
			config.Router = router
			config.EnableMCP = withMCP

			handler, err := buildHandler(config, httpsolkit.NewService(nil))
			if err != nil {
				t.Fatalf("%s: buildHandler failed: %v", router, err)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			if rec.Code != http.StatusOK {
				t.Errorf("%s (mcp=%v): GET / = %d", router, withMCP, rec.Code)
			}

			rec = httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", strings.NewReader("{}")))
			mounted := !strings.Contains(rec.Body.String(), "route not found")
			if mounted != withMCP {
				t.Errorf("%s (mcp=%v): /mcp mounted = %v, body %s", router, withMCP, mounted, rec.Body.String())
			}
		}
	}
}

func TestBuildHandler_UnknownRouter(t *testing.T) {
	config := httpsolkit.DefaultConfig()
	config.Router = "echo"

	if _, err := buildHandler(config, httpsolkit.NewService(nil)); err == nil {
		t.Error("expected error for unknown router")
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		format  string
		wantErr bool
	}{
		{"info", "text", false},
		{"debug", "json", false},
		{"WARN", "TEXT", false},
		{"error", "json", false},
		{"loud", "text", true},
		{"info", "xml", true},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		logger, err := newLogger(&buf, tt.level, tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("newLogger(%q, %q) error = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
			continue
		}
		if err == nil {
			logger.Error("hello")
			if !strings.Contains(buf.String(), "hello") {
				t.Errorf("newLogger(%q, %q) did not write", tt.level, tt.format)
			}
		}
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("SOLKIT_TEST_VALUE", "from-env")

	if got := envOr("flag", "SOLKIT_TEST_VALUE", "def"); got != "flag" {
		t.Errorf("flag value lost: %s", got)
	}
	if got := envOr("", "SOLKIT_TEST_VALUE", "def"); got != "from-env" {
		t.Errorf("env value lost: %s", got)
	}
	if got := envOr("", "SOLKIT_TEST_UNSET", "def"); got != "def" {
		t.Errorf("default lost: %s", got)
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SOLKIT_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SOLKIT_TEST_DOTENV", "")
	os.Unsetenv("SOLKIT_TEST_DOTENV")

	if err := loadEnvFile(path); err != nil {
		t.Fatalf("loadEnvFile failed: %v", err)
	}
	if got := os.Getenv("SOLKIT_TEST_DOTENV"); got != "loaded" {
		t.Errorf("SOLKIT_TEST_DOTENV = %q", got)
	}

	if err := loadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing file should be ignored, got %v", err)
	}
}

func TestNewRootCommand_IndependentFlags(t *testing.T) {
	first := NewRootCommand()
	second := NewRootCommand()

	for name, value := range map[string]string{"env-file": "other.env", "log-level": "debug", "log-format": "json"} {
		if err := first.PersistentFlags().Set(name, value); err != nil {
			t.Fatalf("failed to set --%s: %v", name, err)
		}
	}

	want := map[string]string{"env-file": ".env", "log-level": "", "log-format": ""}
	for name, def := range want {
		if got := second.PersistentFlags().Lookup(name).Value.String(); got != def {
			t.Errorf("second command --%s = %q, want %q", name, got, def)
		}
	}
}
