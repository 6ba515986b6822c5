package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mark3labs/solkit-go"
	httpsolkit "github.com/mark3labs/solkit-go/http"
)

// Tool names.
const (
	ToolGenerateKeypair = "generate_keypair"
	ToolCreateToken     = "create_token"
	ToolMintToken       = "mint_token"
	ToolSignMessage     = "sign_message"
	ToolVerifyMessage   = "verify_message"
	ToolSendSol         = "send_sol"
	ToolSendToken       = "send_token"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool(
		ToolGenerateKeypair,
		mcp.WithDescription("Generate a new Ed25519 keypair. Returns the base58 public key and 64-byte secret key."),
	), s.generateKeypair)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolCreateToken,
		mcp.WithDescription("Build an SPL Token InitializeMint instruction with no freeze authority"),
		mcp.WithString("mintAuthority", mcp.Required(), mcp.Description("Base58 public key of the mint authority")),
		mcp.WithString("mint", mcp.Required(), mcp.Description("Base58 public key of the mint account")),
		mcp.WithNumber("decimals", mcp.Required(), mcp.Description("Number of decimals, 0 to 255")),
	), s.createToken)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolMintToken,
		mcp.WithDescription("Build an SPL Token MintTo instruction"),
		mcp.WithString("mint", mcp.Required(), mcp.Description("Base58 public key of the mint")),
		mcp.WithString("destination", mcp.Required(), mcp.Description("Base58 token account receiving the tokens")),
		mcp.WithString("authority", mcp.Required(), mcp.Description("Base58 public key of the mint authority")),
		mcp.WithString("amount", mcp.Required(), mcp.Description("Amount in base units, as a decimal string")),
	), s.mintToken)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolSignMessage,
		mcp.WithDescription("Sign a UTF-8 message with an Ed25519 secret key"),
		mcp.WithString("message", mcp.Required(), mcp.Description("Message to sign")),
		mcp.WithString("secret", mcp.Required(), mcp.Description("Base58 64-byte secret key")),
	), s.signMessage)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolVerifyMessage,
		mcp.WithDescription("Verify an Ed25519 signature over a UTF-8 message"),
		mcp.WithString("message", mcp.Required(), mcp.Description("Message that was signed")),
		mcp.WithString("signature", mcp.Required(), mcp.Description("Base64 signature")),
		mcp.WithString("pubkey", mcp.Required(), mcp.Description("Base58 public key of the signer")),
	), s.verifyMessage)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolSendSol,
		mcp.WithDescription("Build a System program transfer instruction"),
		mcp.WithString("from", mcp.Required(), mcp.Description("Base58 sender address")),
		mcp.WithString("to", mcp.Required(), mcp.Description("Base58 recipient address")),
		mcp.WithString("lamports", mcp.Required(), mcp.Description("Lamports to send, as a decimal string")),
	), s.sendSol)

	s.mcpServer.AddTool(mcp.NewTool(
		ToolSendToken,
		mcp.WithDescription("Build an SPL Token transfer between the owner's and destination's associated token accounts"),
		mcp.WithString("destination", mcp.Required(), mcp.Description("Base58 wallet address of the recipient")),
		mcp.WithString("mint", mcp.Required(), mcp.Description("Base58 public key of the token mint")),
		mcp.WithString("owner", mcp.Required(), mcp.Description("Base58 wallet address of the sender")),
		mcp.WithString("amount", mcp.Required(), mcp.Description("Amount in base units, as a decimal string")),
	), s.sendToken)
}

func (s *Server) generateKeypair(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.svc.GenerateKeypair())
}

func (s *Server) createToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return toolResult(s.svc.CreateToken(httpsolkit.CreateTokenRequest{
		MintAuthority: stringArg(args, "mintAuthority"),
		Mint:          stringArg(args, "mint"),
		Decimals:      numberArg(args, "decimals"),
	}))
}

func (s *Server) mintToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return toolResult(s.svc.MintToken(httpsolkit.MintTokenRequest{
		Mint:        stringArg(args, "mint"),
		Destination: stringArg(args, "destination"),
		Authority:   stringArg(args, "authority"),
		Amount:      numberArg(args, "amount"),
	}))
}

func (s *Server) signMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return toolResult(s.svc.SignMessage(httpsolkit.SignMessageRequest{
		Message: stringArg(args, "message"),
		Secret:  stringArg(args, "secret"),
	}))
}

func (s *Server) verifyMessage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return toolResult(s.svc.VerifyMessage(httpsolkit.VerifyMessageRequest{
		Message:   stringArg(args, "message"),
		Signature: stringArg(args, "signature"),
		Pubkey:    stringArg(args, "pubkey"),
	}))
}

func (s *Server) sendSol(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return toolResult(s.svc.SendSol(httpsolkit.SendSolRequest{
		From:     stringArg(args, "from"),
		To:       stringArg(args, "to"),
		Lamports: numberArg(args, "lamports"),
	}))
}

func (s *Server) sendToken(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	return toolResult(s.svc.SendToken(httpsolkit.SendTokenRequest{
		Destination: stringArg(args, "destination"),
		Mint:        stringArg(args, "mint"),
		Owner:       stringArg(args, "owner"),
		Amount:      numberArg(args, "amount"),
	}))
}

// toolResult renders a Result as tool output: the JSON data on success, or a
// tool error carrying the failure message.
func toolResult(result solkit.Result) (*mcp.CallToolResult, error) {
	switch r := result.(type) {
	case solkit.OK:
		data, err := json.Marshal(r.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to encode tool result: %w", err)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(data))},
		}, nil
	case solkit.Failure:
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{mcp.NewTextContent(r.Message)},
		}, nil
	default:
		return nil, fmt.Errorf("unexpected result type %T", result)
	}
}

func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// numberArg accepts a JSON number or a decimal string. Strings keep u64
// amounts exact, since JSON numbers arrive as float64.
func numberArg(args map[string]any, key string) json.Number {
	switch v := args[key].(type) {
	case string:
		return json.Number(v)
	case float64:
		return json.Number(strconv.FormatFloat(v, 'f', -1, 64))
	case json.Number:
		return v
	default:
		return ""
	}
}
