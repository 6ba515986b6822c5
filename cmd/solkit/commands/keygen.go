package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark3labs/solkit-go"
	"github.com/mark3labs/solkit-go/keys"
)

func keygenCmd() *cobra.Command {
	var (
		asJSON     bool
		words      int
		passphrase string
		path       string
		verifyFile string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print a fresh keypair",
		Long: "Print a fresh keypair as base58 text, or as the Solana CLI JSON byte array with --json.\n" +
			"With --words, generate a BIP39 mnemonic and derive the keypair from it.\n" +
			"With --verify-file, check a Solana CLI keypair file and print its public key.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if verifyFile != "" {
				kp, err := keys.LoadKeygenFile(verifyFile)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, kp.PublicKey.String())
				return nil
			}

			var (
				kp       solkit.Keypair
				mnemonic string
				err      error
			)
			if words > 0 {
				mnemonic, err = keys.NewMnemonic(words)
				if err != nil {
					return err
				}
				kp, err = keys.FromMnemonic(mnemonic, passphrase, path)
			} else {
				kp, err = keys.Generate()
			}
			if err != nil {
				return err
			}

			if asJSON {
				data, err := keys.MarshalKeygenJSON(kp)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			pubkey, secret := keys.EncodeKeypair(kp)
			if mnemonic != "" {
				fmt.Fprintf(out, "mnemonic: %s\n", mnemonic)
			}
			fmt.Fprintf(out, "pubkey: %s\nsecret: %s\n", pubkey, secret)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the secret key as a JSON byte array")
	cmd.Flags().IntVar(&words, "words", 0, "generate a BIP39 mnemonic of 12 or 24 words")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP39 passphrase used with --words")
	cmd.Flags().StringVar(&path, "derivation-path", "", "SLIP-0010 path used with --words, e.g. m/44'/501'/0'/0'")
	cmd.Flags().StringVar(&verifyFile, "verify-file", "", "check a keypair file and print its public key")
	return cmd
}
