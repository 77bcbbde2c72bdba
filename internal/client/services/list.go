// Package services contains the typed backend services of the console: one
// per entity over the shared request gateway, plus authentication, files,
// and the report source. Each list-backed service owns one list machine;
// the six list views differ only in endpoint, record type, and filter keys.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Fyandono/project-maintenance-system/internal/client/gateway"
	"github.com/Fyandono/project-maintenance-system/internal/client/models"
)

// fetchList issues a paginated filtered list request. Empty criteria values
// are omitted from the query, matching the backend's treatment of absent
// filters.
func fetchList[R any](ctx context.Context, api gateway.Doer, path string, criteria map[string]string, page, pageSize int) (models.Envelope[R], error) {
	query := url.Values{}
	for key, value := range criteria {
		if value != "" {
			query.Set(key, value)
		}
	}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var env models.Envelope[R]
	data, err := api.Do(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		return env, err
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return env, fmt.Errorf("decoding %s list: %w", path, err)
	}
	return env, nil
}

// sendJSON submits a create/edit body and decodes the returned record.
func sendJSON[R any](ctx context.Context, api gateway.Doer, method, path string, body any) (R, error) {
	var record R
	data, err := api.Do(ctx, method, path, body, nil)
	if err != nil {
		return record, err
	}
	if len(data) == 0 {
		return record, nil
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("decoding %s response: %w", path, err)
	}
	return record, nil
}

// getJSON fetches a single resource.
func getJSON[R any](ctx context.Context, api gateway.Doer, path string, query url.Values) (R, error) {
	var record R
	data, err := api.Do(ctx, http.MethodGet, path, nil, query)
	if err != nil {
		return record, err
	}
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("decoding %s response: %w", path, err)
	}
	return record, nil
}
