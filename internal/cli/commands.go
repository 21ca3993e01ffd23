package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rdsctl/rdsctl/internal/catalog"
	"github.com/rdsctl/rdsctl/internal/config"
	apperrors "github.com/rdsctl/rdsctl/pkg/errors"
	"github.com/rdsctl/rdsctl/pkg/utils"
)

func (a *App) newOperationsCmd() *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:         "operations",
		Short:       "List the supported RDS operations",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COMMAND\tOPERATION\tGROUP\tFLAGS")

			found := false
			for _, g := range catalog.Groups() {
				if group != "" && group != g.ID {
					continue
				}
				found = true
				for _, d := range g.Operations {
					info := d.Describe()
					var marks string
					if info.Destructive {
						marks += "destructive "
					}
					if info.Paging != nil {
						marks += "paged"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", kebab(info.Name), info.Name, g.ID, marks)
				}
			}
			if !found {
				return apperrors.NewError(apperrors.ErrCodeUnknownOperation,
					fmt.Sprintf("unknown operation group %q", group)).WithComponent(component)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "only list operations of this group")
	return cmd
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the version number of rdsctl",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rdsctl version %s\n", a.Version)
		},
	}
}

func (a *App) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the rdsctl configuration file",
	}

	var overwrite bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a configuration file with default values",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.configPath()
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !overwrite {
				return apperrors.NewError(apperrors.ErrCodeConfigSave,
					fmt.Sprintf("%s already exists; use --overwrite to replace it", path)).WithComponent(component)
			}

			if err := config.NewDefault().SaveToFile(path); err != nil {
				return apperrors.NewError(apperrors.ErrCodeConfigSave, "failed to write configuration").
					WithComponent(component).WithCause(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func (a *App) configPath() (string, error) {
	if a.flags.configFile != "" {
		return utils.ExpandHome(a.flags.configFile)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", apperrors.NewError(apperrors.ErrCodeConfigSave, "cannot locate home directory").
			WithComponent(component).WithCause(err)
	}
	return filepath.Join(home, config.DefaultFileName), nil
}
