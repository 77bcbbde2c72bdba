package liststate

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Fyandono/project-maintenance-system/internal/client/models"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// fakeFetch records every backend call and plays back scripted envelopes.
type fakeFetch struct {
	calls []fetchCall
	next  func(criteria map[string]string, page, pageSize int) (models.Envelope[row], error)
}

type fetchCall struct {
	criteria map[string]string
	page     int
	pageSize int
}

func (f *fakeFetch) fetch(_ context.Context, criteria map[string]string, page, pageSize int) (models.Envelope[row], error) {
	f.calls = append(f.calls, fetchCall{criteria: criteria, page: page, pageSize: pageSize})
	if f.next != nil {
		return f.next(criteria, page, pageSize)
	}
	return models.Envelope[row]{
		Data:       []row{{ID: "1", Name: "one"}},
		TotalPages: 3,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

func newTestMachine(f *fakeFetch, scopeKey string) *Machine[row] {
	return New(Config[row]{
		Name:     "row",
		ScopeKey: scopeKey,
		Fetch:    f.fetch,
		Log:      logging.NewNop(),
	})
}

func TestSetFilter_ResetsPageCursor(t *testing.T) {
	f := &fakeFetch{}
	m := newTestMachine(f, "")

	m.SetPage(4)
	require.Equal(t, 4, m.PageNumber())

	m.SetFilter("name", "pump")
	require.Equal(t, 1, m.PageNumber())

	// The page key itself only moves the cursor.
	m.SetPage(2)
	require.Equal(t, 2, m.PageNumber())
	require.Equal(t, "pump", m.Criterion("name"))

	// Changing the page size also resets the cursor.
	m.SetPageSize(25)
	require.Equal(t, 1, m.PageNumber())
	require.Equal(t, 25, m.PageSize())
}

func TestSetFilter_EmptyValueRemovesCriterion(t *testing.T) {
	m := newTestMachine(&fakeFetch{}, "")
	m.SetFilter("name", "pump")
	m.SetFilter("name", "")
	require.Empty(t, m.Criterion("name"))
}

func TestFetch_ScopeSuppression(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetch{}
	m := newTestMachine(f, "project_id")

	require.NoError(t, m.Fetch(ctx))
	require.Empty(t, f.calls, "no request may go out while the scope is empty")

	m.SetFilter("project_id", "p1")
	require.NoError(t, m.Fetch(ctx))
	require.Len(t, f.calls, 1)
	require.Equal(t, "p1", f.calls[0].criteria["project_id"])
}

func TestFetch_SatisfiedTupleIsNoOp(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetch{}
	m := newTestMachine(f, "")

	require.NoError(t, m.Fetch(ctx))
	require.NoError(t, m.Fetch(ctx))
	require.Len(t, f.calls, 1, "an already-satisfied tuple must not refetch")

	m.SetFilter("name", "pump")
	require.NoError(t, m.Fetch(ctx))
	require.Len(t, f.calls, 2)
}

func TestFetch_ServerEchoIsAuthoritative(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetch{next: func(_ map[string]string, _, _ int) (models.Envelope[row], error) {
		// The server clamped the out-of-range request back to page 3.
		return models.Envelope[row]{Data: []row{{ID: "9"}}, TotalPages: 3, Page: 3, PageSize: 10}, nil
	}}
	m := newTestMachine(f, "")

	m.SetPage(99)
	require.NoError(t, m.Fetch(ctx))

	page := m.Page()
	require.Equal(t, 3, page.Number)
	require.Equal(t, 3, page.TotalPages)
	require.Equal(t, 3, m.PageNumber())
}

func TestFetch_ZeroEchoFallsBack(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetch{next: func(_ map[string]string, _, _ int) (models.Envelope[row], error) {
		return models.Envelope[row]{Data: nil}, nil
	}}
	m := newTestMachine(f, "")

	require.NoError(t, m.Fetch(ctx))
	page := m.Page()
	require.Equal(t, 1, page.Number)
	require.Equal(t, 1, page.TotalPages)
	require.Equal(t, defaultPageSize, page.Size)
}

func TestFetch_FailureClearsPageKeepsCriteria(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("backend down")
	f := &fakeFetch{}
	m := newTestMachine(f, "")

	require.NoError(t, m.Fetch(ctx))
	require.NotEmpty(t, m.Page().Records)

	m.SetFilter("name", "pump")
	f.next = func(_ map[string]string, _, _ int) (models.Envelope[row], error) {
		return models.Envelope[row]{}, boom
	}
	require.ErrorIs(t, m.Fetch(ctx), boom)

	require.Empty(t, m.Page().Records)
	require.Equal(t, 1, m.Page().TotalPages)
	require.ErrorIs(t, m.Err(), boom)
	require.Equal(t, "pump", m.Criterion("name"), "criteria survive a failed fetch")

	// A retry with the same tuple goes out again: failure never satisfies.
	f.next = nil
	require.NoError(t, m.Fetch(ctx))
	require.NotEmpty(t, m.Page().Records)
	require.NoError(t, m.Err())
}

func TestFetch_StaleResponseDiscarded(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetch{}
	m := newTestMachine(f, "")

	// The first request is slow: while it is in flight the filter changes
	// and a second, fresher request completes. The first completion must
	// not overwrite the fresher page.
	first := true
	f.next = func(criteria map[string]string, page, pageSize int) (models.Envelope[row], error) {
		if first {
			first = false
			m.SetFilter("name", "fresh")
			require.NoError(t, m.Fetch(ctx))
			return models.Envelope[row]{
				Data: []row{{ID: "stale"}}, TotalPages: 1, Page: 1, PageSize: 10,
			}, nil
		}
		return models.Envelope[row]{
			Data: []row{{ID: "fresh"}}, TotalPages: 1, Page: 1, PageSize: 10,
		}, nil
	}

	require.NoError(t, m.Fetch(ctx))
	require.Len(t, f.calls, 2)
	require.Equal(t, "fresh", m.Page().Records[0].ID)
	require.False(t, m.IsLoading())
}

func TestResetFilters_KeepsScope(t *testing.T) {
	m := newTestMachine(&fakeFetch{}, "project_id")
	m.SetFilter("project_id", "p1")
	m.SetFilter("name", "pump")
	m.SetPageSize(50)

	m.ResetFilters()
	require.Equal(t, "p1", m.Criterion("project_id"))
	require.Empty(t, m.Criterion("name"))
	require.Equal(t, defaultPageSize, m.PageSize())
	require.Equal(t, 1, m.PageNumber())
}

func TestClearState_WipesScope(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetch{}
	m := newTestMachine(f, "project_id")
	m.SetFilter("project_id", "p1")
	require.NoError(t, m.Fetch(ctx))

	m.ClearState()
	require.Empty(t, m.Criterion("project_id"))
	require.Empty(t, m.Page().Records)

	// Scoped again: fetch is suppressed until a new scope arrives.
	require.NoError(t, m.Fetch(ctx))
	require.Len(t, f.calls, 1)
}

func TestReplaceRecord(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetch{next: func(_ map[string]string, _, _ int) (models.Envelope[row], error) {
		return models.Envelope[row]{
			Data:       []row{{ID: "1", Name: "one"}, {ID: "2", Name: "two"}},
			TotalPages: 1, Page: 1, PageSize: 10,
		}, nil
	}}
	m := newTestMachine(f, "")
	require.NoError(t, m.Fetch(ctx))

	updated := row{ID: "2", Name: "two (verified)"}
	m.ReplaceRecord(updated, func(r row) bool { return r.ID == updated.ID })
	require.Equal(t, "two (verified)", m.Page().Records[1].Name)

	// An off-page record is a no-op.
	m.ReplaceRecord(row{ID: "404"}, func(r row) bool { return r.ID == "404" })
	require.Len(t, m.Page().Records, 2)
}

func TestFetch_CriteriaSnapshotIsolated(t *testing.T) {
	ctx := context.Background()
	var got map[string]string
	f := &fakeFetch{next: func(criteria map[string]string, _, _ int) (models.Envelope[row], error) {
		got = criteria
		return models.Envelope[row]{TotalPages: 1, Page: 1, PageSize: 10}, nil
	}}
	m := newTestMachine(f, "")
	m.SetFilter("name", "pump")
	require.NoError(t, m.Fetch(ctx))

	got["name"] = "mutated"
	require.Equal(t, "pump", m.Criterion("name"))
}

func TestPagination_SequentialPages(t *testing.T) {
	ctx := context.Background()
	f := &fakeFetch{next: func(_ map[string]string, page, pageSize int) (models.Envelope[row], error) {
		return models.Envelope[row]{
			Data:       []row{{ID: strconv.Itoa(page)}},
			TotalPages: 5, Page: page, PageSize: pageSize,
		}, nil
	}}
	m := newTestMachine(f, "")

	require.NoError(t, m.Fetch(ctx))
	m.SetPage(2)
	require.NoError(t, m.Fetch(ctx))
	require.Equal(t, "2", m.Page().Records[0].ID)
	require.Len(t, f.calls, 2)
	require.Equal(t, 2, f.calls[1].page)
}
