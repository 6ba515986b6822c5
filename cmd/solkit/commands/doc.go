// Package commands defines the solkit CLI.
//
// Commands
//
//   - serve   Run the JSON HTTP API (chi, gin or stdlib router), optionally with MCP at /mcp
//   - keygen  Print a fresh keypair, a mnemonic-derived keypair, or check a keygen file
//   - mcp     Serve the MCP tools over stdio
//
// # Configuration
//
// A .env file is loaded before flags are read. Every serve flag falls back to
// a SOLKIT_* environment variable, and PORT overrides the listening port.
// Logs always go to stderr so that stdout stays clean for keygen output and
// the MCP stdio transport.
package commands
