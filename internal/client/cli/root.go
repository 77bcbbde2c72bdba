package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/perm"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub that records lines.
var printlnFn = fmt.Println

// root runs the command loop. Each navigable view sits behind the same
// two-stage gate the routing table defines: authentication first, then
// the view's capability. The loop exits on scanner EOF or "exit"/"quit".
//
// Logged out:
//
//	help, login, exit | quit
//
// Logged in:
//
//	open <vendor|project|pm|user|unit|role> — enter an entity view
//	list                — fetch and render the current view
//	scope <id>          — set the parent scope (vendor for projects,
//	                      project for pm records)
//	filter <key> <val>  — set one criterion ("" clears it)
//	search <text>       — debounced free-text filter
//	reset               — drop filters, keep the scope
//	close               — leave the view, wiping its state
//	page <n>, next, prev, size <n>
//	add, edit <id>      — open the create/edit form
//	verify <id>         — verification form (pm view)
//	detail <id>         — record detail (pm view)
//	export              — spreadsheet of the current pm list (pm view)
//	report              — cross-vendor spreadsheet report
//	download <id> [dir] — save an attachment
//	whoami, passwd, logout, exit | quit
func (a *App) root(ctx context.Context, scanner *bufio.Scanner) {
	for {
		fmt.Fprintf(a.out, "pm %s> ", a.status())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "exit", "quit":
			a.stopSearch()
			printlnFn("Bye!")
			return
		case "help":
			a.printHelp()
			continue
		}

		if !a.session.IsAuthenticated() {
			if cmd == "login" {
				_ = a.Login(ctx)
			} else {
				printlnFn("Please log in first.")
			}
			continue
		}

		switch cmd {
		case "login":
			printlnFn("Already logged in. Use 'logout' to switch accounts.")

		case "logout":
			_ = a.Logout(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)

		case "whoami":
			a.WhoAmI()

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <vendor|project|pm|user|unit|role>")
				continue
			}
			a.openView(ctx, args[0])

		case "report":
			if a.decide("/report") {
				_ = a.ExportReport(ctx)
			}

		case "download":
			if len(args) == 0 {
				printlnFn("Usage: download <file-id> [dir]")
				continue
			}
			dir := ""
			if len(args) > 1 {
				dir = args[1]
			}
			_ = a.DownloadFile(ctx, args[0], dir)

		default:
			a.viewCommand(ctx, cmd, args)
		}
	}
}

// status renders the prompt segment: login state and the active view.
func (a *App) status() string {
	principal := a.session.Principal()
	if principal == nil {
		return "(not logged in) "
	}
	if a.current == nil {
		return fmt.Sprintf("%s ", principal.Username)
	}
	return fmt.Sprintf("%s/%s ", principal.Username, a.current.title())
}

// decide applies the routing gate to path and reports the outcome to the
// user when navigation is denied.
func (a *App) decide(path string) bool {
	var caps perm.Set
	if principal := a.session.Principal(); principal != nil {
		caps = principal.Capabilities
	}
	switch perm.Decide(a.session.IsAuthenticated(), caps, path) {
	case perm.DecisionLogin:
		printlnFn("Please log in first.")
		return false
	case perm.DecisionUnauthorized:
		printlnFn("You do not have access to " + path + ".")
		return false
	}
	return true
}

// openView switches the active view, arming the debounced search for it.
func (a *App) openView(ctx context.Context, name string) {
	v, ok := a.views[name]
	if !ok {
		printlnFn("Unknown view:", name)
		return
	}
	if !a.decide(v.route()) {
		return
	}

	a.stopSearch()
	a.current = v
	a.search = a.newSearchDebouncer(v)
	_ = v.show(ctx, a.out)
}

// viewCommand handles the commands that operate on the active view.
func (a *App) viewCommand(ctx context.Context, cmd string, args []string) {
	v := a.current
	if v == nil {
		printlnFn("Unknown command:", cmd)
		return
	}

	switch cmd {
	case "list":
		if a.search != nil {
			a.search.Flush()
		}
		_ = v.show(ctx, a.out)

	case "scope":
		if v.scopeKey() == "" {
			printlnFn("The", v.title(), "view has no parent scope.")
			return
		}
		if len(args) == 0 {
			printlnFn("Usage: scope <id>")
			return
		}
		v.setFilter(v.scopeKey(), args[0])
		_ = v.show(ctx, a.out)

	case "filter":
		if len(args) < 1 {
			printlnFn("Usage: filter <key> [value]  (keys: " + strings.Join(v.filterKeys(), ", ") + ")")
			return
		}
		value := ""
		if len(args) > 1 {
			value = strings.Join(args[1:], " ")
		}
		v.setFilter(args[0], value)
		_ = v.show(ctx, a.out)

	case "search":
		if v.searchKey() == "" {
			printlnFn("The", v.title(), "view has no free-text search.")
			return
		}
		if a.search == nil {
			a.search = a.newSearchDebouncer(v)
		}
		a.search.Update(strings.Join(args, " "))

	case "reset":
		v.resetFilters()
		_ = v.show(ctx, a.out)

	case "close":
		a.stopSearch()
		v.clearState()
		a.current = nil

	case "page":
		if len(args) == 0 {
			printlnFn("Usage: page <n>")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			printlnFn("Usage: page <n>")
			return
		}
		v.setPage(n)
		_ = v.show(ctx, a.out)

	case "next":
		v.nextPage()
		_ = v.show(ctx, a.out)

	case "prev":
		v.prevPage()
		_ = v.show(ctx, a.out)

	case "size":
		if len(args) == 0 {
			printlnFn("Usage: size <n>")
			return
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			printlnFn("Usage: size <n>")
			return
		}
		v.setPageSize(n)
		_ = v.show(ctx, a.out)

	case "add":
		if !a.can(v.addCapability()) {
			printlnFn("You may not create " + v.title() + " records.")
			return
		}
		if err := v.addForm(ctx); err != nil {
			a.log.Debug(ctx, "create form aborted", "view", v.title(), "error", err)
		}

	case "edit":
		if len(args) == 0 {
			printlnFn("Usage: edit <id>")
			return
		}
		if !a.can(v.editCapability()) {
			printlnFn("You may not edit " + v.title() + " records.")
			return
		}
		if err := v.editForm(ctx, args[0]); err != nil {
			a.log.Debug(ctx, "edit form aborted", "view", v.title(), "error", err)
		}

	case "verify":
		if v != a.views["pm"] {
			printlnFn("'verify' works in the pm view.")
			return
		}
		if len(args) == 0 {
			printlnFn("Usage: verify <id>")
			return
		}
		if !a.can(perm.CapVerifyPM) {
			printlnFn("You may not verify PM records.")
			return
		}
		_ = a.pmVerify(ctx, args[0])

	case "detail":
		if v != a.views["pm"] {
			printlnFn("'detail' works in the pm view.")
			return
		}
		if len(args) == 0 {
			printlnFn("Usage: detail <id>")
			return
		}
		if err := a.pmDetail(ctx, args[0]); err != nil {
			printlnFn("Could not load the record:", err)
		}

	case "export":
		switch v {
		case a.views["pm"]:
			_ = a.ExportPMList(ctx)
		case a.views["vendor"]:
			_ = a.ExportVendorList(ctx)
		default:
			printlnFn("'export' works in the pm and vendor views.")
		}

	default:
		printlnFn("Unknown command:", cmd)
	}
}

// newSearchDebouncer binds the view's free-text criterion to the
// debounce window: the commit fires only after the input has been stable
// for the whole window, then refreshes the list.
func (a *App) newSearchDebouncer(v view) *liststate.Debouncer {
	if v.searchKey() == "" {
		return nil
	}
	return liststate.NewDebouncer(a.cfg.DebounceWindow, func(value string) {
		v.setFilter(v.searchKey(), value)
		_ = v.show(a.runCtx, a.out)
	})
}

func (a *App) printHelp() {
	if !a.session.IsAuthenticated() {
		printlnFn("Available commands: login, help, exit")
		return
	}
	printlnFn("Views:    open <vendor|project|pm|user|unit|role>, list, close")
	printlnFn("Filters:  scope <id>, filter <key> [value], search <text>, reset")
	printlnFn("Paging:   page <n>, next, prev, size <n>")
	printlnFn("Forms:    add, edit <id>, verify <id>, detail <id>")
	printlnFn("Reports:  report, export, download <id> [dir]")
	printlnFn("Session:  whoami, passwd, logout, exit")
}
