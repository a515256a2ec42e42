package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ouiObject string

// ouiCmd is the parent command for vendor prefix operations.
var ouiCmd = &cobra.Command{
	Use:   "oui",
	Short: "Manage MAC vendor prefixes",
}

// ouiImportCmd imports a vendor prefix file.
var ouiImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a vendor prefix file",
	Long: `Imports an OUI file and upserts one vendor prefix per line.

Accepted line forms:
  00:00:0C<TAB>Cisco Systems, Inc
  00-00-0C   (hex)    Cisco Systems, Inc
  00000c Cisco Systems, Inc

Examples:
  # Import a local file
  oui import oui.txt

  # Import a file stored in the bucket
  oui import --object oui/oui.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if (len(args) == 0) == (ouiObject == "") {
			return fmt.Errorf("pass either a file or --object")
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.logger.Sync()

		if err := rt.openDB(); err != nil {
			return err
		}

		var n int
		if ouiObject != "" {
			if err := rt.openStorage(); err != nil {
				return err
			}
			n, err = rt.topologyService().ImportOUIObject(cmd.Context(), ouiObject)
		} else {
			f, openErr := os.Open(args[0])
			if openErr != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], openErr)
			}
			defer f.Close()
			n, err = rt.topologyService().ImportOUI(cmd.Context(), f)
		}
		if err != nil {
			return err
		}

		rt.logger.Info("Vendor prefixes imported", zap.Int("count", n))
		return nil
	},
}

func init() {
	ouiImportCmd.Flags().StringVar(&ouiObject, "object", "", "Object key of the OUI file in the bucket")
	ouiCmd.AddCommand(ouiImportCmd)
	RootCmd.AddCommand(ouiCmd)
}
