// Package liststate implements the filtered, paginated, server-backed list
// lifecycle shared by every entity view: one generic machine parameterized
// by record type and fetch endpoint, instantiated per entity with
// configuration instead of copied logic.
//
// The machine owns the reconciliation rules:
//   - changing any criterion other than the page cursor resets the cursor;
//   - a list requiring a parent scope never fetches while the scope is empty;
//   - a fetch for an already-satisfied tuple is a no-op;
//   - responses apply in issuance order — a stale completion is discarded;
//   - the server's echoed page values are authoritative over the request's.
package liststate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

// Criteria keys with pagination meaning. Setting KeyPage moves the cursor
// without resetting it; everything else resets the cursor to the first page.
const (
	KeyPage     = "page"
	KeyPageSize = "page_size"
)

const defaultPageSize = 10

// Page is the last-fetched page of records. It is replaced atomically on
// fetch completion, never merged or appended.
type Page[R any] struct {
	Records    []R
	TotalPages int
	Number     int
	Size       int
}

// FetchFunc issues the backend list call for the given criteria snapshot.
type FetchFunc[R any] func(ctx context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[R], error)

// Config parameterizes one machine instance.
type Config[R any] struct {
	// Name identifies the entity in logs ("vendor", "pm", ...).
	Name string

	// ScopeKey names a criterion that must be non-empty before any fetch
	// is issued (e.g. the vendor id scoping the project list). Empty means
	// the list is unscoped.
	ScopeKey string

	// DefaultPageSize falls back to 10 when zero.
	DefaultPageSize int

	Fetch FetchFunc[R]
	Log   logging.Logger
}

// Machine holds the list state for one entity view.
type Machine[R any] struct {
	mu  sync.Mutex
	cfg Config[R]

	criteria   map[string]string
	pageNumber int
	pageSize   int

	page    Page[R]
	extra   map[string]json.RawMessage
	loading bool
	err     error

	// seq tags each issued fetch; applied is the newest sequence whose
	// completion has been applied. Completions older than applied are
	// discarded so an out-of-order arrival cannot overwrite fresher state.
	seq     uint64
	applied uint64

	// satisfiedKey is the tuple the current page reflects; it gates the
	// idempotence of Fetch.
	satisfiedKey string
	inflightKey  string
}

func New[R any](cfg Config[R]) *Machine[R] {
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = defaultPageSize
	}
	return &Machine[R]{
		cfg:        cfg,
		criteria:   map[string]string{},
		pageNumber: 1,
		pageSize:   cfg.DefaultPageSize,
		page:       Page[R]{TotalPages: 1, Number: 1, Size: cfg.DefaultPageSize},
	}
}

// SetFilter updates one criterion and clears any previous error. The page
// cursor resets to 1 unless the key is the page cursor itself.
func (m *Machine[R]) SetFilter(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch key {
	case KeyPage:
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			m.pageNumber = n
		}
	case KeyPageSize:
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			m.pageSize = n
		}
		m.pageNumber = 1
	default:
		if value == "" {
			delete(m.criteria, key)
		} else {
			m.criteria[key] = value
		}
		m.pageNumber = 1
	}

	m.err = nil
	m.satisfiedKey = ""
}

// SetPage moves the page cursor.
func (m *Machine[R]) SetPage(n int) {
	m.SetFilter(KeyPage, strconv.Itoa(n))
}

// SetPageSize changes the page size, resetting the cursor.
func (m *Machine[R]) SetPageSize(n int) {
	m.SetFilter(KeyPageSize, strconv.Itoa(n))
}

// ResetFilters drops all criteria except the parent scope and restores the
// default pagination.
func (m *Machine[R]) ResetFilters() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.criteria {
		if key != m.cfg.ScopeKey {
			delete(m.criteria, key)
		}
	}
	m.pageNumber = 1
	m.pageSize = m.cfg.DefaultPageSize
	m.err = nil
	m.satisfiedKey = ""
}

// ClearState wipes everything, scope included. Used when leaving a view.
func (m *Machine[R]) ClearState() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.criteria = map[string]string{}
	m.pageNumber = 1
	m.pageSize = m.cfg.DefaultPageSize
	m.page = Page[R]{TotalPages: 1, Number: 1, Size: m.cfg.DefaultPageSize}
	m.extra = nil
	m.loading = false
	m.err = nil
	m.satisfiedKey = ""
	m.inflightKey = ""
}

// Fetch reconciles the list with the backend. It is an idempotent trigger:
// when the current tuple is already satisfied or already in flight, no
// request is issued. A required-but-empty parent scope suppresses the fetch
// entirely rather than querying an unscoped table.
func (m *Machine[R]) Fetch(ctx context.Context) error {
	m.mu.Lock()

	if m.cfg.ScopeKey != "" && m.criteria[m.cfg.ScopeKey] == "" {
		m.mu.Unlock()
		m.cfg.Log.Debug(ctx, "fetch suppressed: parent scope missing",
			"entity", m.cfg.Name, "scope_key", m.cfg.ScopeKey)
		return nil
	}

	key := m.tupleKey()
	if m.satisfiedKey == key || (m.loading && m.inflightKey == key) {
		m.mu.Unlock()
		return nil
	}

	m.seq++
	seq := m.seq
	m.loading = true
	m.inflightKey = key
	m.err = nil

	criteria := make(map[string]string, len(m.criteria))
	for k, v := range m.criteria {
		criteria[k] = v
	}
	page, size := m.pageNumber, m.pageSize
	m.mu.Unlock()

	env, err := m.cfg.Fetch(ctx, criteria, page, size)

	m.mu.Lock()
	defer m.mu.Unlock()

	if seq < m.applied {
		// A fresher response has already been applied; this one is stale.
		m.cfg.Log.Debug(ctx, "discarding stale list response",
			"entity", m.cfg.Name, "seq", seq, "applied", m.applied)
		return nil
	}
	m.applied = seq
	m.loading = seq != m.seq

	if err != nil {
		// Criteria and cursor survive so the user can retry without
		// losing input; the page does not.
		m.page = Page[R]{TotalPages: 1, Number: m.pageNumber, Size: m.pageSize}
		m.extra = nil
		m.err = err
		m.satisfiedKey = ""
		m.cfg.Log.Warn(ctx, "list fetch failed", "entity", m.cfg.Name, "error", err)
		return err
	}

	m.page = Page[R]{
		Records:    env.Data,
		TotalPages: orOne(env.TotalPages),
		Number:     orOne(env.Page),
		Size:       orDefault(env.PageSize, m.cfg.DefaultPageSize),
	}
	// The server clamps out-of-range pages; its echo wins.
	m.pageNumber = m.page.Number
	m.pageSize = m.page.Size
	m.extra = env.ExtraData
	m.satisfiedKey = m.tupleKey()
	return nil
}

// ReplaceRecord applies an optimistic single-record replacement keyed by
// identity, ahead of the authoritative refresh. No-op when the record is
// not on the current page.
func (m *Machine[R]) ReplaceRecord(record R, sameID func(R) bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.page.Records {
		if sameID(m.page.Records[i]) {
			m.page.Records[i] = record
			return
		}
	}
}

// tupleKey canonicalizes (criteria, page, size). Callers hold mu.
func (m *Machine[R]) tupleKey() string {
	keys := make([]string, 0, len(m.criteria))
	for k := range m.criteria {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s&", k, m.criteria[k])
	}
	fmt.Fprintf(&b, "page=%d&size=%d", m.pageNumber, m.pageSize)
	return b.String()
}

func orOne(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}

func orDefault(n, def int) int {
	if n <= 0 {
		return def
	}
	return n
}

// Accessors. Each takes the lock; the returned values are snapshots.

func (m *Machine[R]) Page() Page[R] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.page
}

func (m *Machine[R]) PageNumber() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pageNumber
}

func (m *Machine[R]) PageSize() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pageSize
}

func (m *Machine[R]) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func (m *Machine[R]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

func (m *Machine[R]) Criterion(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.criteria[key]
}

// Extra returns the parent-summary block echoed by the server, if any.
func (m *Machine[R]) Extra() map[string]json.RawMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.extra
}
