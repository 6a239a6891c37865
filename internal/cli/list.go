package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/pagelist/internal/catalog"
	"github.com/rshade/pagelist/internal/config"
	"github.com/rshade/pagelist/internal/logging"
	"github.com/rshade/pagelist/internal/pagination"
	"github.com/rshade/pagelist/internal/tui"
)

// Flag names shared by the root and list commands.
const (
	flagPage     = "page"
	flagPageSize = "page-size"
	flagItems    = "items"
	flagOutput   = "output"
	flagPlain    = "plain"
	flagNoColor  = "no-color"
)

// listOptions holds the list flags.
type listOptions struct {
	page     int
	pageSize int
	items    int
	output   string
	plain    bool
	noColor  bool
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the paginated list",
		Long: `Shows the item list one page at a time.

On a terminal the list is interactive: use ←/→ (or p/n) to move between pages,
tab to switch the focused button, enter to press it, and q to quit.
When output is piped, or with --plain, a single page is printed.
--output json|yaml prints the page and its metadata for scripting.`,
		Example: `  # Browse interactively
  pagelist list

  # Print the last page of the default list
  pagelist list --page 5 --plain

  # 100 items, 20 per page, as YAML
  pagelist list --items 100 --page-size 20 --output yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, &opts)
		},
	}

	addListFlags(cmd, &opts)
	return cmd
}

// addListFlags registers the list flags on cmd.
func addListFlags(cmd *cobra.Command, opts *listOptions) {
	cmd.Flags().IntVar(&opts.page, flagPage, pagination.DefaultPage, "page to open on (1-based)")
	cmd.Flags().IntVar(&opts.pageSize, flagPageSize, pagination.DefaultPageSize,
		"items per page (overrides list.page_size)")
	cmd.Flags().IntVar(&opts.items, flagItems, pagination.DefaultItemCount,
		"number of items in the list (overrides list.item_count)")
	cmd.Flags().StringVarP(&opts.output, flagOutput, "o", "",
		"output format: table, json, yaml (default from output.default_format)")
	cmd.Flags().BoolVar(&opts.plain, flagPlain, false, "print plain text instead of the interactive view")
	cmd.Flags().BoolVar(&opts.noColor, flagNoColor, false, "disable colors (implies --plain)")
}

// resolveParams merges flags over the configured list settings.
// Flags only win when set explicitly.
func resolveParams(cmd *cobra.Command, opts *listOptions) pagination.Params {
	cfg := config.GetGlobalConfig()

	params := pagination.NewParams()
	params.Page = opts.page
	params.PageSize = cfg.List.PageSize
	params.ItemCount = cfg.List.ItemCount
	if cmd.Flags().Changed(flagPageSize) {
		params.PageSize = opts.pageSize
	}
	if cmd.Flags().Changed(flagItems) {
		params.ItemCount = opts.items
	}
	return *params
}

// runList validates the flags and routes the list to the right renderer.
func runList(cmd *cobra.Command, opts *listOptions) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	params := resolveParams(cmd, opts)
	if err := params.Validate(); err != nil {
		return err
	}

	format := config.GetOutputFormat(opts.output)
	if !config.IsValidOutputFormat(format) {
		return fmt.Errorf("%w: got %q", config.ErrInvalidOutputFormat, format)
	}

	items := catalog.Generate(params.ItemCount)

	log.Debug().Ctx(ctx).
		Int("page", params.Page).
		Int("page_size", params.PageSize).
		Int("items", params.ItemCount).
		Str("format", format).
		Msg("rendering list")

	if format == config.FormatJSON || format == config.FormatYAML {
		page, meta := snapshot(ctx, items, params)
		return renderStructured(cmd.OutOrStdout(), format, page, meta)
	}

	mode := tui.DetectOutputMode(opts.plain, opts.noColor)
	log.Debug().Ctx(ctx).Str("mode", mode.String()).Msg("output mode detected")

	switch mode {
	case tui.OutputModeInteractive:
		return runInteractiveList(ctx, items, params)

	case tui.OutputModeStyled:
		page, meta := snapshot(ctx, items, params)
		v := tui.NewListView(page, meta)
		v.Width = tui.TerminalWidth()
		_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStyled(v))
		return err

	case tui.OutputModePlain:
		fallthrough
	default:
		page, meta := snapshot(ctx, items, params)
		_, err := fmt.Fprint(cmd.OutOrStdout(), tui.RenderPlain(tui.NewListView(page, meta)))
		return err
	}
}

// snapshot runs the same actions the interactive view would (mount, then a
// jump to the requested page) and returns the resulting page.
func snapshot(
	ctx context.Context,
	items catalog.Collection,
	params pagination.Params,
) (pagination.Page[string], pagination.Meta) {
	store := pagination.NewStore(ctx, pagination.NewState())
	store.Dispatch(pagination.SetTotalItems(items.Len()))
	if params.Page != pagination.DefaultPage {
		store.Dispatch(pagination.SetCurrentPage(params.Page))
	}

	state := store.State()
	return pagination.Paginate([]string(items), state, params.PageSize),
		pagination.NewMeta(state, params.PageSize, items.Len())
}

func runInteractiveList(ctx context.Context, items catalog.Collection, params pagination.Params) error {
	model := tui.NewPageListModel(ctx, items, params.PageSize)
	model.SetStartPage(params.Page)

	p := tea.NewProgram(model, tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive TUI: %w", err)
	}
	return nil
}
