// Command ecdemo exercises the field and curve packages on the preset curves.
//
//	ecdemo                                  # print the generator of secp256k1
//	ecdemo add --curve bn254                # G + G on BN254
//	ecdemo add --x1 .. --y1 .. --x2 .. --y2 ..
//	ecdemo field --op div --a 17 --b 5      # arithmetic in the base field
//
// Every flag can also be set through the environment as ECDEMO_<FLAG>,
// for example ECDEMO_CURVE=p256.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("ECDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:          "ecdemo",
		Short:        "Prime field and short Weierstrass point arithmetic",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogger(v, func(logger *zap.Logger) error {
				return runGenerator(cmd.OutOrStdout(), logger, v.GetString("curve"))
			})
		},
	}

	flags := root.PersistentFlags()
	flags.String("curve", "secp256k1", "curve: secp256k1, bn254 or p256")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.String("log-format", "console", "log format: console or json")
	_ = v.BindPFlags(flags)

	root.AddCommand(newAddCommand(v), newFieldCommand(v))
	return root
}

func newAddCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add two points; missing points default to the generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogger(v, func(logger *zap.Logger) error {
				p := pointArgs{x1: v.GetString("x1"), y1: v.GetString("y1"), x2: v.GetString("x2"), y2: v.GetString("y2")}
				return runAdd(cmd.OutOrStdout(), logger, v.GetString("curve"), p)
			})
		},
	}

	flags := cmd.Flags()
	flags.String("x1", "", "x of the first point (decimal or 0x hex)")
	flags.String("y1", "", "y of the first point")
	flags.String("x2", "", "x of the second point")
	flags.String("y2", "", "y of the second point")
	_ = v.BindPFlags(flags)
	return cmd
}

func newFieldCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "field",
		Short: "Combine two elements of the curve's base field",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLogger(v, func(logger *zap.Logger) error {
				return runField(cmd.OutOrStdout(), logger, v.GetString("curve"), v.GetString("op"), v.GetString("a"), v.GetString("b"))
			})
		},
	}

	flags := cmd.Flags()
	flags.String("op", "add", "operation: add, sub, mul, div or pow")
	flags.String("a", "0", "left operand")
	flags.String("b", "0", "right operand, or the exponent for pow")
	_ = v.BindPFlags(flags)
	return cmd
}

func withLogger(v *viper.Viper, run func(*zap.Logger) error) error {
	logger, err := newLogger(v.GetString("log-level"), v.GetString("log-format"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		return err
	}
	return nil
}
