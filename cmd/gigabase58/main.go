package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	giga "github.com/dogecoinfoundation/gigabase58/pkg"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var config giga.Config
	var configPath string
	v := viper.New()

	// define root command: encode or decode stdin to stdout
	rootCmd := &cobra.Command{
		Use:           "gigabase58",
		Short:         "Encode stdin to base58, or decode base58 from stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(v, configPath)
			if err != nil {
				return err
			}
			config = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := giga.CodecFromConfig(config)
			if err != nil {
				return errors.Wrap(err, "invalid codec options")
			}
			return runCodec(cmd.InOrStdin(), cmd.OutOrStdout(), codec, v.GetBool("decode"))
		},
	}

	// Add flags for each configuration option
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (TOML, YAML or JSON)")
	flags.StringP("alphabet", "a", "bitcoin", "alphabet: bitcoin, monero, ripple, flickr or custom(<58 symbols>)")
	flags.Bool("check", false, "append/verify a Base58Check checksum")
	flags.Bool("cb58", false, "append/verify a CB58 checksum")
	flags.Int("check-version", -1, "version byte to prefix/require (needs --check or --cb58)")
	flags.String("webapi-bind", "", "Web API bind address")
	flags.String("webapi-port", "", "Web API port")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-file", "", "rotated JSON log file")
	rootCmd.Flags().BoolP("decode", "d", false, "decode input")

	// Bind flags to config fields
	v.BindPFlags(flags)
	v.BindPFlags(rootCmd.Flags())
	v.SetEnvPrefix("GIGA58")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the base58 web API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Server(config)
		},
	}

	var chainName string
	addressCmd := &cobra.Command{
		Use:   "address <pubkey-hex|wif|extended-key>",
		Short: "Print the P2PKH address of a public key, WIF or BIP32 extended key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := giga.NewAPI(config, nil)
			if err != nil {
				return err
			}
			res, err := api.KeyAddress(chainName, args[0])
			if err != nil {
				return errors.Wrap(err, "address")
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Address)
			return nil
		},
	}
	addressCmd.Flags().StringVar(&chainName, "chain", "", "doge, testnet, regtest or bitcoin (default: doge, or the chain of a WIF key)")

	scriptCmd := &cobra.Command{
		Use:   "script <scriptpubkey-hex>",
		Short: "Classify a ScriptPubKey and print its address, if it has one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := giga.NewAPI(config, nil)
			if err != nil {
				return err
			}
			res, err := api.ScriptAddress(chainName, args[0])
			if err != nil {
				return errors.Wrap(err, "script")
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Type, res.Address)
			return nil
		},
	}
	scriptCmd.Flags().StringVar(&chainName, "chain", "", "doge, testnet, regtest or bitcoin (default: doge)")

	configCmd := &cobra.Command{
		Use:   "showconf",
		Short: "Print the config state and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := json.MarshalIndent(config, ">", " ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(o))
			return nil
		},
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(configCmd)
	return rootCmd
}

// LoadConfig reads the config file (and GIGA58_ environment), then applies
// any flags that were given on the command line.
func LoadConfig(v *viper.Viper, configPath string) (giga.Config, error) {
	if configPath == "" {
		configPath = os.Getenv("GIGA58_CONFIG")
	}
	config, err := giga.LoadConfig(configPath)
	if err != nil {
		return config, errors.Wrapf(err, "failed to load config %q", configPath)
	}
	if v.IsSet("alphabet") {
		config.Codec.Alphabet = v.GetString("alphabet")
	}
	check, cb58 := v.GetBool("check"), v.GetBool("cb58")
	switch {
	case check && cb58:
		return config, errors.New("--check and --cb58 are mutually exclusive")
	case check:
		config.Codec.Check = "check"
	case cb58:
		config.Codec.Check = "cb58"
	}
	if v.IsSet("check-version") {
		config.Codec.Version = ""
		if version := v.GetInt("check-version"); version >= 0 {
			config.Codec.Version = strconv.Itoa(version)
		}
	}
	if v.IsSet("webapi-bind") {
		config.WebAPI.Bind = v.GetString("webapi-bind")
	}
	if v.IsSet("webapi-port") {
		config.WebAPI.Port = v.GetString("webapi-port")
	}
	if v.IsSet("log-level") {
		config.Log.Level = v.GetString("log-level")
	}
	if v.IsSet("log-file") {
		config.Log.File = v.GetString("log-file")
	}
	return config, nil
}
