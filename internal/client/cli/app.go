// Package cli is the interactive console over the maintenance backend: a
// REPL that navigates the entity lists, drives the create/edit/verify
// forms, and exports spreadsheet reports. Every mutation of list or
// session state goes through the state machines owned by the lower
// layers; the REPL itself only parses commands and renders.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Fyandono/project-maintenance-system/internal/client/config"
	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/liststate"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/client/repositories/tokens"
	"github.com/Fyandono/project-maintenance-system/internal/client/services"
	"github.com/Fyandono/project-maintenance-system/internal/client/session"
	"github.com/Fyandono/project-maintenance-system/internal/client/submit"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

// App wires the console together: session, gateway, services, one list
// machine per entity, and one submission controller per form. It also
// implements session.Navigator and submit.Sink, so forced navigation and
// submission banners surface as console output.
type App struct {
	cfg *config.Config
	log logging.Logger

	db      *sql.DB
	session *session.Session
	api     *gateway.Client

	auth     services.AuthService
	vendors  services.VendorService
	projects services.ProjectService
	pms      services.PMService
	users    services.UserService
	units    services.UnitService
	roles    services.RoleService
	reports  services.ReportService
	files    services.FileService

	vendorList  *liststate.Machine[models.Vendor]
	projectList *liststate.Machine[models.Project]
	pmList      *liststate.Machine[models.PMRecord]
	userList    *liststate.Machine[models.User]
	unitList    *liststate.Machine[models.Unit]
	roleList    *liststate.Machine[models.Role]

	vendorCtl  *submit.Controller[services.VendorInput, models.Vendor]
	projectCtl *submit.Controller[services.ProjectInput, models.Project]
	pmCtl      *submit.Controller[services.PMInput, models.PMRecord]
	verifyCtl  *submit.Controller[services.VerifyInput, models.PMRecord]
	userCtl    *submit.Controller[services.UserInput, models.User]
	unitCtl    *submit.Controller[services.UnitInput, models.Unit]
	roleCtl    *submit.Controller[services.RoleInput, models.Role]

	views   map[string]view
	current view
	search  *liststate.Debouncer

	reader *bufio.Reader
	out    io.Writer

	// runCtx is the REPL's context, captured by Run for the asynchronous
	// debounce commit which has no caller to pass one.
	runCtx context.Context
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := tokens.OpenDatabase(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	a.session = session.New(tokens.NewSQLiteRepository(db), a, log)

	a.api, err = gateway.NewClient(cfg.BaseURL, cfg.RequestTimeout, a.session, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a.auth = services.NewAuthService(a.api)
	a.vendors = services.NewVendorService(a.api)
	a.projects = services.NewProjectService(a.api)
	a.pms = services.NewPMService(a.api)
	a.users = services.NewUserService(a.api)
	a.units = services.NewUnitService(a.api)
	a.roles = services.NewRoleService(a.api)
	a.reports = services.NewReportService(a.api)
	a.files = services.NewFileService(a.api)

	a.vendorList = services.NewVendorList(a.vendors, cfg.DefaultPageSize, log)
	a.projectList = services.NewProjectList(a.projects, cfg.DefaultPageSize, log)
	a.pmList = services.NewPMList(a.pms, cfg.DefaultPageSize, log)
	a.userList = services.NewUserList(a.users, cfg.DefaultPageSize, log)
	a.unitList = services.NewUnitList(a.units, cfg.DefaultPageSize, log)
	a.roleList = services.NewRoleList(a.roles, cfg.DefaultPageSize, log)

	a.buildControllers()
	a.views = a.buildViews()

	return a, nil
}

// Run resumes any persisted session and enters the REPL. It returns when
// the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.runCtx = ctx

	if err := a.session.Resume(ctx); err != nil {
		a.log.Warn(ctx, "could not resume session", "error", err)
	}

	fmt.Fprintln(a.out, "Maintenance console (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	a.root(ctx, scanner)
}

// Publish implements submit.Sink: submission outcomes render as banners.
func (a *App) Publish(n submit.Notice) {
	tag := "[ OK ]"
	if n.Level == submit.LevelFailure {
		tag = "[FAIL]"
	}
	fmt.Fprintf(a.out, "%s %s\n", tag, n.Text)
}

// NavigateLogin implements session.Navigator. The session has already
// been cleared when this fires; the console drops the active view so the
// next prompt is the logged-out one.
func (a *App) NavigateLogin(ctx context.Context) {
	a.stopSearch()
	a.current = nil
	fmt.Fprintln(a.out, "Session expired. Please log in again.")
}

// buildControllers binds each form to its service call, its owning list,
// and the optimistic replacement applied while the refresh is in flight.
func (a *App) buildControllers() {
	a.vendorCtl = submit.NewController(submit.Config[services.VendorInput, models.Vendor]{
		Entity: "vendor",
		Do: func(ctx context.Context, kind submit.Kind, in services.VendorInput) (models.Vendor, error) {
			if kind == submit.KindCreate {
				return a.vendors.Create(ctx, in)
			}
			return a.vendors.Edit(ctx, in)
		},
		Describe: func(r models.Vendor) string { return r.Name },
		List:     a.vendorList,
		Apply: func(r models.Vendor) {
			a.vendorList.ReplaceRecord(r, func(x models.Vendor) bool { return x.ID == r.ID })
		},
		Notices: a,
		Log:     a.log,
	})

	a.projectCtl = submit.NewController(submit.Config[services.ProjectInput, models.Project]{
		Entity: "project",
		Do: func(ctx context.Context, kind submit.Kind, in services.ProjectInput) (models.Project, error) {
			if kind == submit.KindCreate {
				return a.projects.Create(ctx, in)
			}
			return a.projects.Edit(ctx, in)
		},
		Describe: func(r models.Project) string { return r.Name },
		List:     a.projectList,
		Apply: func(r models.Project) {
			a.projectList.ReplaceRecord(r, func(x models.Project) bool { return x.ID == r.ID })
		},
		Notices: a,
		Log:     a.log,
	})

	a.pmCtl = submit.NewController(submit.Config[services.PMInput, models.PMRecord]{
		Entity: "PM record",
		Do: func(ctx context.Context, kind submit.Kind, in services.PMInput) (models.PMRecord, error) {
			if kind == submit.KindCreate {
				return a.pms.Create(ctx, in)
			}
			return a.pms.Edit(ctx, in)
		},
		Describe: func(r models.PMRecord) string { return clip(r.Description, 40) },
		List:     a.pmList,
		Apply: func(r models.PMRecord) {
			a.pmList.ReplaceRecord(r, func(x models.PMRecord) bool { return x.ID == r.ID })
		},
		Notices: a,
		Log:     a.log,
	})

	a.verifyCtl = submit.NewController(submit.Config[services.VerifyInput, models.PMRecord]{
		Entity: "PM record",
		Do: func(ctx context.Context, _ submit.Kind, in services.VerifyInput) (models.PMRecord, error) {
			return a.pms.Verify(ctx, in)
		},
		Validate: func(_ submit.Kind, in services.VerifyInput) error {
			return submit.CheckVerifyRules(submit.VerifyRules{
				ProjectDate:    in.ProjectDate,
				CompletionDate: in.CompletionDate,
				Verified:       in.IsVerified,
				Note:           in.Note,
			}, time.Now())
		},
		Describe: func(r models.PMRecord) string { return clip(r.Description, 40) },
		List:     a.pmList,
		Apply: func(r models.PMRecord) {
			a.pmList.ReplaceRecord(r, func(x models.PMRecord) bool { return x.ID == r.ID })
		},
		Notices: a,
		Log:     a.log,
	})

	a.userCtl = submit.NewController(submit.Config[services.UserInput, models.User]{
		Entity: "user",
		Do: func(ctx context.Context, kind submit.Kind, in services.UserInput) (models.User, error) {
			if kind == submit.KindCreate {
				return a.users.Create(ctx, in)
			}
			return a.users.Edit(ctx, in)
		},
		Describe: func(r models.User) string { return r.Username },
		List:     a.userList,
		Apply: func(r models.User) {
			a.userList.ReplaceRecord(r, func(x models.User) bool { return x.ID == r.ID })
		},
		Notices: a,
		Log:     a.log,
	})

	a.unitCtl = submit.NewController(submit.Config[services.UnitInput, models.Unit]{
		Entity: "unit",
		Do: func(ctx context.Context, kind submit.Kind, in services.UnitInput) (models.Unit, error) {
			if kind == submit.KindCreate {
				return a.units.Create(ctx, in)
			}
			return a.units.Edit(ctx, in)
		},
		Describe: func(r models.Unit) string { return r.Name },
		List:     a.unitList,
		Apply: func(r models.Unit) {
			a.unitList.ReplaceRecord(r, func(x models.Unit) bool { return x.ID == r.ID })
		},
		Notices: a,
		Log:     a.log,
	})

	a.roleCtl = submit.NewController(submit.Config[services.RoleInput, models.Role]{
		Entity: "role",
		Do: func(ctx context.Context, kind submit.Kind, in services.RoleInput) (models.Role, error) {
			if kind == submit.KindCreate {
				return a.roles.Create(ctx, in)
			}
			return a.roles.Edit(ctx, in)
		},
		Describe: func(r models.Role) string { return r.Name },
		List:     a.roleList,
		Apply: func(r models.Role) {
			a.roleList.ReplaceRecord(r, func(x models.Role) bool { return x.ID == r.ID })
		},
		Notices: a,
		Log:     a.log,
	})
}

// stopSearch cancels any pending debounced filter commit, e.g. when the
// user leaves the view before the quiescence window elapses.
func (a *App) stopSearch() {
	if a.search != nil {
		a.search.Stop()
		a.search = nil
	}
}
