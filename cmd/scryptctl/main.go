// Command scryptctl is a small operator-facing front end over the scrypt
// package: it derives raw keys, hashes passphrases into "$s0$..." records,
// and verifies passphrases against such records. It owns no algorithmic
// logic of its own — every invariant and error kind it reports comes
// straight from the scrypt package.
package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"k8s.io/klog/v2"

	"github.com/dchesnokov/scrypt"
)

var (
	flagCostFactor uint
	flagR          int
	flagP          int
	flagDKLen      int
	flagSalt       string
	flagStdin      bool
	flagConfig     string
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	root := newRootCommand()
	if err := root.Execute(); err != nil {
		klog.Errorf("scryptctl: %v", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "scryptctl",
		Short:         "Derive and verify scrypt-based keys and password hashes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd.Flags())
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "optional YAML file pinning default --n/--r/--p")
	root.PersistentFlags().UintVar(&flagCostFactor, "n", scrypt.DefaultCostFactor, "cost factor, log2(N)")
	root.PersistentFlags().IntVar(&flagR, "r", scrypt.DefaultR, "block size factor")
	root.PersistentFlags().IntVar(&flagP, "p", scrypt.DefaultP, "parallelization factor")
	root.PersistentFlags().BoolVar(&flagStdin, "stdin", false, "read the passphrase from stdin instead of prompting a terminal")

	root.AddCommand(newDeriveCommand())
	root.AddCommand(newHashCommand())
	root.AddCommand(newVerifyCommand())
	return root
}

// loadConfig seeds flagCostFactor/flagR/flagP from --config, when given,
// without overriding values the operator set explicitly on the command
// line. cobra/pflag parse flags into the vars above before this runs
// regardless of whether the operator typed them, so the only reliable
// way to tell "explicitly set" from "left at its default" is
// flags.Changed — checking the vars themselves can't distinguish an
// explicit "--n 14" from the identical default.
func loadConfig(flags *pflag.FlagSet) error {
	if flagConfig == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(flagConfig)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading --config %s: %w", flagConfig, err)
	}
	if v.IsSet("n") && !flags.Changed("n") {
		flagCostFactor = uint(v.GetInt("n"))
	}
	if v.IsSet("r") && !flags.Changed("r") {
		flagR = v.GetInt("r")
	}
	if v.IsSet("p") && !flags.Changed("p") {
		flagP = v.GetInt("p")
	}
	klog.V(1).Infof("scryptctl: loaded defaults from %s: n=%d r=%d p=%d", flagConfig, flagCostFactor, flagR, flagP)
	return nil
}

func newDeriveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a raw key and print it as hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagSalt == "" {
				return errors.New("derive requires --salt")
			}
			salt, err := decodeSaltFlag(flagSalt)
			if err != nil {
				return err
			}
			passphrase, err := readPassphrase("Passphrase: ")
			if err != nil {
				return err
			}

			key, err := scrypt.Derive(passphrase, salt, flagCostFactor, flagR, flagP, flagDKLen)
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(key))
			return nil
		},
	}
	cmd.Flags().StringVar(&flagSalt, "salt", "", "salt: a literal byte string, or 0x-prefixed hex")
	cmd.Flags().IntVar(&flagDKLen, "dklen", 32, "derived key length in bytes")
	return cmd
}

func newHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash",
		Short: "Hash a passphrase into a $s0$... record",
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := readPassphrase("New passphrase: ")
			if err != nil {
				return err
			}
			record, err := scrypt.HashPasswordWithParams(passphrase, flagCostFactor, flagR, flagP)
			if err != nil {
				return err
			}
			fmt.Println(record)
			return nil
		},
	}
}

func newVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <record>",
		Short: "Verify a passphrase against a $s0$... record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			passphrase, err := readPassphrase("Passphrase: ")
			if err != nil {
				return err
			}

			ok, verr := scrypt.VerifyPasswordError(passphrase, args[0])
			if verr != nil {
				var formatErr *scrypt.FormatError
				if errors.As(verr, &formatErr) {
					klog.V(1).Infof("scryptctl: record was malformed: %v", verr)
				}
			} else if !ok {
				klog.V(1).Infof("scryptctl: passphrase did not match the record")
			}
			fmt.Printf("verified: %t\n", ok)
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}
}

// readPassphrase reads a passphrase either from stdin (one line, when
// --stdin was given, for scripting/CI) or from the controlling terminal
// with echo disabled (the default, interactive case).
func readPassphrase(prompt string) ([]byte, error) {
	if flagStdin {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return nil, fmt.Errorf("reading passphrase from stdin: %w", err)
		}
		return []byte(trimNewline(line)), nil
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("reading passphrase from terminal: %w", err)
	}
	return passphrase, nil
}

// decodeSaltFlag implements --salt=<hex|literal>: a "0x"-prefixed value is
// decoded as hex, anything else is taken as a literal byte string.
func decodeSaltFlag(s string) ([]byte, error) {
	if rest, ok := strings.CutPrefix(s, "0x"); ok {
		salt, err := hex.DecodeString(rest)
		if err != nil {
			return nil, fmt.Errorf("--salt: invalid hex after 0x prefix: %w", err)
		}
		return salt, nil
	}
	return []byte(s), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
