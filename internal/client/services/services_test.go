package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeDoer records every request and plays back a scripted body.
type fakeDoer struct {
	calls []doerCall
	body  []byte
	err   error
}

type doerCall struct {
	method string
	path   string
	body   any
	query  url.Values
}

func (f *fakeDoer) Do(_ context.Context, method, path string, body any, query url.Values) ([]byte, error) {
	f.calls = append(f.calls, doerCall{method: method, path: path, body: body, query: query})
	return f.body, f.err
}

func (f *fakeDoer) last(t *testing.T) doerCall {
	t.Helper()
	require.NotEmpty(t, f.calls)
	return f.calls[len(f.calls)-1]
}

func TestVendorList_QueryShape(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"data":[{"id":"v1","name":"Acme"}],"total_pages":2,"page":1,"page_size":10}`)}
	svc := NewVendorService(api)

	env, err := svc.List(context.Background(), map[string]string{
		FilterName: "acme",
		"ignored":  "",
	}, 1, 10)
	require.NoError(t, err)
	require.Len(t, env.Data, 1)
	require.Equal(t, "Acme", env.Data[0].Name)
	require.Equal(t, 2, env.TotalPages)

	call := api.last(t)
	require.Equal(t, http.MethodGet, call.method)
	require.Equal(t, "/x/vendor", call.path)
	require.Equal(t, "acme", call.query.Get("name"))
	require.Equal(t, "1", call.query.Get("page"))
	require.Equal(t, "10", call.query.Get("page_size"))
	require.False(t, call.query.Has("ignored"), "empty criteria are omitted")
}

func TestVendorCreateAndEdit(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"id":"v1","name":"Acme"}`)}
	svc := NewVendorService(api)

	record, err := svc.Create(context.Background(), VendorInput{Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, "v1", record.ID)
	require.Equal(t, http.MethodPost, api.last(t).method)

	_, err = svc.Edit(context.Background(), VendorInput{ID: "v1", Name: "Acme 2"})
	require.NoError(t, err)
	call := api.last(t)
	require.Equal(t, http.MethodPut, call.method)
	require.Equal(t, "/x/vendor", call.path)
}

func TestVendorAll(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"data":[{"id":"v1"},{"id":"v2"}]}`)}
	svc := NewVendorService(api)

	vendors, err := svc.All(context.Background())
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	require.Equal(t, "/x/all-vendor", api.last(t).path)
}

func TestVendorReport(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"data":[{"id":"v1"}]}`)}
	svc := NewVendorService(api)

	vendors, err := svc.Report(context.Background())
	require.NoError(t, err)
	require.Len(t, vendors, 1)

	call := api.last(t)
	require.Equal(t, "/x/vendor", call.path)
	require.Equal(t, "true", call.query.Get("is_report"))
}

func TestAuthLogin(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"access_token":"tok123"}`)}
	svc := NewAuthService(api)

	token, err := svc.Login(context.Background(), "jdoe", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok123", token)

	call := api.last(t)
	require.Equal(t, http.MethodPost, call.method)
	require.Equal(t, "/login", call.path)

	body, err := json.Marshal(call.body)
	require.NoError(t, err)
	require.JSONEq(t, `{"username":"jdoe","password":"secret"}`, string(body))
}

func TestAuthLogin_Error(t *testing.T) {
	api := &fakeDoer{err: errors.New("401")}
	svc := NewAuthService(api)
	_, err := svc.Login(context.Background(), "jdoe", "bad")
	require.Error(t, err)
}

func TestAuthChangePassword(t *testing.T) {
	api := &fakeDoer{}
	svc := NewAuthService(api)

	require.NoError(t, svc.ChangePassword(context.Background(), "old", "new"))
	call := api.last(t)
	require.Equal(t, http.MethodPut, call.method)
	require.Equal(t, "/x/change-password", call.path)
}

func TestPMVerify(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"id":"pm1","is_verified":true}`)}
	svc := NewPMService(api)

	record, err := svc.Verify(context.Background(), VerifyInput{
		ID:             "pm1",
		CompletionDate: "2025-01-10",
		IsVerified:     true,
		ProjectDate:    "2025-01-01",
	})
	require.NoError(t, err)
	require.NotNil(t, record.IsVerified)
	require.True(t, *record.IsVerified)

	call := api.last(t)
	require.Equal(t, http.MethodPut, call.method)
	require.Equal(t, "/x/verify", call.path)

	// ProjectDate is a client-side rule input, never serialized.
	body, err := json.Marshal(call.body)
	require.NoError(t, err)
	require.NotContains(t, string(body), "2025-01-01")
	require.Contains(t, string(body), "pm_completion_date")
}

func TestPMDetail(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"pm":{"id":"pm1"},"project":{"id":"p1","project_name":"Rollout"}}`)}
	svc := NewPMService(api)

	detail, err := svc.Detail(context.Background(), "pm1")
	require.NoError(t, err)
	require.Equal(t, "pm1", detail.PM.ID)
	require.Equal(t, "Rollout", detail.Project.Name)

	call := api.last(t)
	require.Equal(t, "/x/pm-detail", call.path)
	require.Equal(t, "pm1", call.query.Get("id"))
}

func TestUserCreateUsesRegisterEndpoint(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"id":"u1"}`)}
	svc := NewUserService(api)

	_, err := svc.Create(context.Background(), UserInput{Username: "jdoe", Name: "John"})
	require.NoError(t, err)
	require.Equal(t, "/x/register", api.last(t).path)

	_, err = svc.Edit(context.Background(), UserInput{ID: "u1", Username: "jdoe", Name: "John"})
	require.NoError(t, err)
	require.Equal(t, "/x/edit-user", api.last(t).path)
}

func TestReportRows_FilterQuery(t *testing.T) {
	api := &fakeDoer{body: []byte(`{"data":[{"vendor_name":"Acme","pm_task":"swap fans"}]}`)}
	svc := NewReportService(api)

	rows, err := svc.Rows(context.Background(), ReportFilter{
		VendorIDs:        "v1,v2",
		ProjectStartDate: "2025-01-01",
		PMStatus:         "verified",
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "swap fans", rows[0].Task)

	call := api.last(t)
	require.Equal(t, "/x/report", call.path)
	require.Equal(t, "v1,v2", call.query.Get("list_vendor_id"))
	require.Equal(t, "2025-01-01", call.query.Get("project_start_date"))
	require.Equal(t, "verified", call.query.Get("pm_status"))
	require.False(t, call.query.Has("pm_type"), "empty filter fields are omitted")
}

func TestFetchList_BadBody(t *testing.T) {
	api := &fakeDoer{body: []byte(`{`)}
	svc := NewUnitService(api)
	_, err := svc.List(context.Background(), nil, 1, 10)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decoding")
}

type fakeDownloader struct {
	data []byte
	name string
	path string
}

func (f *fakeDownloader) Download(_ context.Context, path string) ([]byte, string, error) {
	f.path = path
	return f.data, f.name, nil
}

func TestFileDownload(t *testing.T) {
	dir := t.TempDir()
	api := &fakeDownloader{data: []byte("blob"), name: "evidence.pdf"}
	svc := NewFileService(api)

	path, err := svc.Download(context.Background(), "f1", dir)
	require.NoError(t, err)
	require.Equal(t, "/x/files/f1", api.path)
	require.FileExists(t, path)
	require.Contains(t, path, "evidence.pdf")
}

func TestFileDownload_FallbackName(t *testing.T) {
	dir := t.TempDir()
	api := &fakeDownloader{data: []byte("blob")}
	svc := NewFileService(api)

	path, err := svc.Download(context.Background(), "f1", dir)
	require.NoError(t, err)
	require.Contains(t, path, "f1")
}
