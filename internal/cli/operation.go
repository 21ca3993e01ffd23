package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rdsctl/rdsctl/internal/adapter"
	apperrors "github.com/rdsctl/rdsctl/pkg/errors"
)

// opFlags holds the invocation settings of one operation command.
type opFlags struct {
	force           bool
	passThru        bool
	maxItems        int
	noAutoIteration bool
}

func (a *App) newOperationCommand(d adapter.Descriptor, groupID string) *cobra.Command {
	info := d.Describe()
	var of opFlags

	cmd := &cobra.Command{
		Use:     kebab(info.Name),
		Short:   info.Description,
		Long:    longHelp(info),
		GroupID: groupID,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOperation(cmd, d, of)
		},
	}

	fs := cmd.Flags()
	fs.SortFlags = false
	for _, p := range info.Params {
		addParamFlag(fs, p)
	}
	if info.Destructive {
		fs.BoolVar(&of.force, "force", false, "skip the confirmation prompt")
	}
	if info.PassThru != "" {
		fs.BoolVar(&of.passThru, "pass-thru", false,
			fmt.Sprintf("output the --%s value instead of the result", kebab(info.PassThru)))
	}
	if info.Paging != nil {
		fs.IntVar(&of.maxItems, "max-items", 0, "stop after this many items and print the marker to continue from")
		fs.BoolVar(&of.noAutoIteration, "no-auto-iteration", false, "fetch a single page instead of following markers")
	}

	return cmd
}

func (a *App) runOperation(cmd *cobra.Command, d adapter.Descriptor, of opFlags) error {
	info := d.Describe()
	fs := cmd.Flags()

	values, err := bindValues(fs, info.Params)
	if err != nil {
		return apperrors.NewError(apperrors.ErrCodeInvalidParameter, err.Error()).
			WithComponent(component).WithOperation(info.Name)
	}
	if of.maxItems < 0 {
		return apperrors.NewError(apperrors.ErrCodeInvalidParameter, "--max-items cannot be negative").
			WithComponent(component).WithOperation(info.Name)
	}

	settings := adapter.Settings{
		Region:          a.cfg.AWS.Region,
		Profile:         a.cfg.AWS.Profile,
		Force:           of.force,
		PassThru:        a.cfg.Output.PassThru,
		MaxItems:        of.maxItems,
		NoAutoIteration: of.noAutoIteration,
	}
	if fs.Changed("pass-thru") {
		settings.PassThru = of.passThru
	}

	// The configured page size applies only when no ceiling drives it.
	if pg := info.Paging; pg != nil && settings.MaxItems == 0 {
		if p, ok := paramForField(info, pg.PageSize); ok && !fs.Changed(kebab(p.Name)) {
			values[p.Name] = a.cfg.Paging.PageSize
		}
	}

	env := a.runner.Run(cmd.Context(), d, adapter.NewInvocation(values, settings))
	if !env.OK() {
		return env.Err
	}

	if err := render(cmd.OutOrStdout(), env, a.cfg.Output.Format); err != nil {
		return err
	}

	if env.NextMarker != "" && info.Paging != nil {
		if p, ok := paramForField(info, info.Paging.InputMarker); ok {
			fmt.Fprintf(cmd.ErrOrStderr(), "More results are available. Continue with --%s %q\n",
				kebab(p.Name), env.NextMarker)
		}
	}
	return nil
}

func addParamFlag(fs *pflag.FlagSet, p adapter.Param) {
	name := kebab(p.Name)
	usage := p.Usage
	if usage == "" {
		usage = p.Field
	}

	switch p.Kind {
	case adapter.KindInt:
		fs.Int64(name, 0, usage)
	case adapter.KindFloat:
		fs.Float64(name, 0, usage)
	case adapter.KindBool:
		fs.Bool(name, false, usage)
	case adapter.KindStrings:
		fs.StringSlice(name, nil, usage)
	case adapter.KindTags:
		fs.StringArray(name, nil, usage+" (Key=Value, repeatable)")
	case adapter.KindFilters:
		fs.StringArray(name, nil, usage+" (Name=value[,value...], repeatable)")
	case adapter.KindParameters:
		fs.StringArray(name, nil, usage+" (Name=Value[:immediate|pending-reboot], repeatable)")
	case adapter.KindTime:
		fs.String(name, "", usage+" (RFC3339)")
	default:
		fs.String(name, "", usage)
	}

	if p.Required {
		f := fs.Lookup(name)
		f.Usage += " (required)"
	}
}

// bindValues collects the flags the user actually set. Unset flags stay
// out of the invocation so their request fields are never sent.
func bindValues(fs *pflag.FlagSet, params []adapter.Param) (map[string]any, error) {
	values := make(map[string]any)
	for _, p := range params {
		name := kebab(p.Name)
		if !fs.Changed(name) {
			continue
		}
		v, err := flagValue(fs, name, p.Kind)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", name, err)
		}
		values[p.Name] = v
	}
	return values, nil
}

func flagValue(fs *pflag.FlagSet, name string, kind adapter.Kind) (any, error) {
	switch kind {
	case adapter.KindInt:
		return fs.GetInt64(name)
	case adapter.KindFloat:
		return fs.GetFloat64(name)
	case adapter.KindBool:
		return fs.GetBool(name)
	case adapter.KindStrings:
		return fs.GetStringSlice(name)
	case adapter.KindTags, adapter.KindFilters, adapter.KindParameters:
		raw, err := fs.GetStringArray(name)
		if err != nil {
			return nil, err
		}
		switch kind {
		case adapter.KindTags:
			return parseTags(raw)
		case adapter.KindFilters:
			return parseFilters(raw)
		default:
			return parseParameters(raw)
		}
	case adapter.KindTime:
		raw, err := fs.GetString(name)
		if err != nil {
			return nil, err
		}
		return parseTime(raw)
	default:
		return fs.GetString(name)
	}
}

func paramForField(info *adapter.Info, field string) (adapter.Param, bool) {
	if field == "" {
		return adapter.Param{}, false
	}
	for _, p := range info.Params {
		if p.Field == field {
			return p, true
		}
	}
	return adapter.Param{}, false
}

func longHelp(info *adapter.Info) string {
	var b strings.Builder
	b.WriteString(info.Description)
	b.WriteString(".\n\nCalls the RDS " + info.Name + " API.")
	if info.Destructive {
		b.WriteString(" This operation changes or removes resources and asks for confirmation unless --force is given.")
	}
	if info.Paging != nil {
		b.WriteString("\n\nResults are paged. All pages are fetched unless --max-items, --no-auto-iteration or an explicit marker is given.")
	}
	return b.String()
}
