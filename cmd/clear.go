package cmd

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	clearPin string
	clearYes bool
)

// clearCmd deletes every record.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the whole inventory",
	Long: `Deletes every record. Requires the configured clear PIN (SERVER_CLEAR_PIN) and a
confirmation, either interactive or via --yes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer rt.close()

		if !rt.cfg.Server.ClearEnabled() {
			return errors.New("clearing is disabled: set SERVER_CLEAR_PIN")
		}
		if !rt.cfg.Server.PinMatches(clearPin) {
			return errors.New("invalid clear PIN")
		}

		if !confirmDestructiveAction(clearYes) {
			rt.log.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		n, err := rt.engine.ClearAll(cmd.Context())
		if err != nil {
			return err
		}
		rt.log.Info("Inventory cleared", zap.Int("count", n))
		return nil
	},
}

func init() {
	clearCmd.Flags().StringVar(&clearPin, "pin", "", "Clear PIN")
	clearCmd.Flags().BoolVar(&clearYes, "yes", false, "Auto-confirm (non-interactive)")
	RootCmd.AddCommand(clearCmd)
}
