package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/perm"
	"github.com/Fyandono/project-maintenance-system/internal/client/report"
)

// view is one browsable entity list as seen by the REPL: a navigation
// route for the permission gate, a list machine behind it, and the forms
// it offers. The concrete type is listView, generic over the record.
type view interface {
	title() string
	route() string

	// searchKey names the debounced free-text criterion, "" when the view
	// has none.
	searchKey() string
	// scopeKey names the parent-scope criterion, "" when unscoped.
	scopeKey() string
	filterKeys() []string

	setFilter(key, value string)
	setPage(n int)
	setPageSize(n int)
	nextPage()
	prevPage()
	resetFilters()
	clearState()

	// show reconciles with the backend and renders the current page.
	show(ctx context.Context, w io.Writer) error

	addCapability() perm.Capability
	editCapability() perm.Capability
	addForm(ctx context.Context) error
	editForm(ctx context.Context, id string) error
}

// listView adapts one list machine to the view interface. Table columns
// reuse the report column mapping so the console and the exporter render
// records identically.
type listView[R any] struct {
	name    string
	path    string
	search  string
	scope   string
	filters []string
	addCap  perm.Capability
	editCap perm.Capability
	columns []report.Column[R]
	m       *liststate.Machine[R]
	add     func(ctx context.Context) error
	edit    func(ctx context.Context, id string) error
}

func (v *listView[R]) title() string        { return v.name }
func (v *listView[R]) route() string        { return v.path }
func (v *listView[R]) searchKey() string    { return v.search }
func (v *listView[R]) scopeKey() string     { return v.scope }
func (v *listView[R]) filterKeys() []string { return v.filters }

func (v *listView[R]) setFilter(key, value string) { v.m.SetFilter(key, value) }
func (v *listView[R]) setPage(n int)               { v.m.SetPage(n) }
func (v *listView[R]) setPageSize(n int)           { v.m.SetPageSize(n) }
func (v *listView[R]) resetFilters()               { v.m.ResetFilters() }
func (v *listView[R]) clearState()                 { v.m.ClearState() }

func (v *listView[R]) nextPage() {
	page := v.m.Page()
	if page.Number < page.TotalPages {
		v.m.SetPage(page.Number + 1)
	}
}

func (v *listView[R]) prevPage() {
	if n := v.m.PageNumber(); n > 1 {
		v.m.SetPage(n - 1)
	}
}

func (v *listView[R]) addCapability() perm.Capability  { return v.addCap }
func (v *listView[R]) editCapability() perm.Capability { return v.editCap }

func (v *listView[R]) addForm(ctx context.Context) error {
	if v.add == nil {
		return fmt.Errorf("%s: no create form", v.name)
	}
	return v.add(ctx)
}

func (v *listView[R]) editForm(ctx context.Context, id string) error {
	if v.edit == nil {
		return fmt.Errorf("%s: no edit form", v.name)
	}
	return v.edit(ctx, id)
}

func (v *listView[R]) show(ctx context.Context, w io.Writer) error {
	if v.scope != "" && v.m.Criterion(v.scope) == "" {
		fmt.Fprintf(w, "Select a parent first: scope <%s>\n", v.scope)
		return nil
	}

	if err := v.m.Fetch(ctx); err != nil {
		fmt.Fprintf(w, "Could not load %s list: %v\n", v.name, err)
		return err
	}

	page := v.m.Page()
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	headers := make([]string, len(v.columns))
	for i, col := range v.columns {
		headers[i] = col.Header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))

	for _, record := range page.Records {
		cells := make([]string, len(v.columns))
		for i, col := range v.columns {
			cells[i] = clip(col.Value(record), int(col.Width))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()

	if len(page.Records) == 0 {
		fmt.Fprintln(w, "(no records)")
	}
	fmt.Fprintf(w, "Page %d of %d (size %d)\n", page.Number, page.TotalPages, page.Size)
	return nil
}

// clip truncates a cell value to the column width so one long note does
// not wreck the table layout.
func clip(s string, max int) string {
	if max <= 3 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
