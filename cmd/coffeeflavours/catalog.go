package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"coffeeflavours/internal/catalog"
	"coffeeflavours/internal/viewstate"
)

var catalogJSON bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the coffee catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Default()
		out := cmd.OutOrStdout()
		if catalogJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(cat.Items())
		}
		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "POS\tID\tNAME\tBACKGROUND")
		for i, it := range cat.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", viewstate.PositionLabel(i, cat.Len()), it.ID, it.Name, it.BgColor)
		}
		return w.Flush()
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil {
			return fmt.Errorf("%s already exists", cfgFile)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Save(cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", cfgFile)
		return nil
	},
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(initCmd)
}
