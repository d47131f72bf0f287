package v1

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/andreyxaxa/Image-Ingest/internal/controller/restapi/v1/response"
	"github.com/andreyxaxa/Image-Ingest/internal/dto"
	"github.com/andreyxaxa/Image-Ingest/internal/entity"
	"github.com/andreyxaxa/Image-Ingest/pkg/logger"
	"github.com/andreyxaxa/Image-Ingest/pkg/metrics"
	"github.com/andreyxaxa/Image-Ingest/pkg/types/errs"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	readyID   = "01JABCDEFGHJKMNPQRSTVWXYZ0"
	pendingID = "01JABCDEFGHJKMNPQRSTVWXYZ1"
	missingID = "01JABCDEFGHJKMNPQRSTVWXYZ2"
)

type stubIngest struct {
	err error
}

func (s stubIngest) CreatePresignedUploadURL(_ context.Context, contentType, fileName string) (*dto.PresignedIngest, error) {
	if s.err != nil {
		return nil, s.err
	}

	return &dto.PresignedIngest{
		ImageID:   readyID,
		UploadURL: "https://s3.example.com/images/ingest/" + readyID + "?ct=" + contentType,
		ExpiresAt: time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC),
	}, nil
}

type stubQuery struct {
	err error
}

func (s stubQuery) GetReadURL(_ context.Context, id entity.ImageID) (*dto.ReadURL, error) {
	if s.err != nil {
		return nil, s.err
	}

	switch id {
	case readyID:
		return &dto.ReadURL{ImageID: id, URL: "https://cdn.example.com/ingest/" + id.String(), ExpiresAt: time.Date(2026, 3, 1, 10, 10, 0, 0, time.UTC)}, nil
	case pendingID:
		return nil, fmt.Errorf("ImageQueryUseCase - GetReadURL: %w", errs.ErrImageNotReady)
	default:
		return nil, fmt.Errorf("ImageQueryUseCase - GetReadURL: %w", errs.ErrRecordNotFound)
	}
}

func (s stubQuery) GetReadURLs(_ context.Context, ids []entity.ImageID) ([]dto.ReadURL, error) {
	if s.err != nil {
		return nil, s.err
	}

	out := make([]dto.ReadURL, 0, len(ids))
	for _, id := range ids {
		if id == readyID {
			out = append(out, dto.ReadURL{ImageID: id, URL: "https://cdn.example.com/ingest/" + id.String()})
		}
	}

	return out, nil
}

func newTestApp(ingest stubIngest, query stubQuery) (*fiber.App, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	app := fiber.New()

	NewImageRoutes(app.Group("/v1"), ingest, query, metrics.NewIngestMetrics(reg), logger.New("error", logger.Output(io.Discard)))

	return app, reg
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, []byte) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, b
}

func decodeError(t *testing.T, b []byte) response.Error {
	t.Helper()

	var e response.Error
	require.NoError(t, json.Unmarshal(b, &e))

	return e
}

func TestCreatePresignedURL(t *testing.T) {
	app, _ := newTestApp(stubIngest{}, stubQuery{})

	code, b := doJSON(t, app, http.MethodPost, "/v1/image/ingest/presigned-url", `{"content_type":"image/jpeg","file_name":"photo.jpg"}`)
	require.Equal(t, http.StatusCreated, code)

	var resp response.PresignedURL
	require.NoError(t, json.Unmarshal(b, &resp))
	assert.Equal(t, readyID, resp.ImageID)
	assert.Contains(t, resp.UploadURL, "ct=image/jpeg")
	assert.Equal(t, "2026-03-01T10:05:00Z", resp.ExpiresAt)
}

func TestCreatePresignedURLErrorKinds(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		body     string
		wantCode int
		wantKind string
	}{
		{"unsupported", fmt.Errorf("%w: %q", errs.ErrUnsupportedContentType, "image/bmp"), `{"content_type":"image/bmp","file_name":"a"}`, http.StatusBadRequest, kindUnsupportedContentType},
		{"file name", fmt.Errorf("%w: must not be empty", errs.ErrInvalidFileName), `{"content_type":"image/png","file_name":""}`, http.StatusBadRequest, kindInvalidFileName},
		{"wrapped file name", fmt.Errorf("IngestUseCase - CreatePresignedUploadURL - validateFileName: %w", fmt.Errorf("%w: control character U+0007", errs.ErrInvalidFileName)), `{"content_type":"image/png","file_name":"a\u0007"}`, http.StatusBadRequest, kindInvalidFileName},
		{"malformed", nil, `{"content_type":`, http.StatusBadRequest, kindBadRequest},
		{"store", fmt.Errorf("IngestUseCase - uc.records.Save: %w: %w", errs.ErrStoreUnavailable, errors.New("dial tcp 10.0.0.1:5432")), `{"content_type":"image/png","file_name":"a"}`, http.StatusInternalServerError, kindInternal},
		{"presign", fmt.Errorf("IngestUseCase: %w", errs.ErrPresignFailed), `{"content_type":"image/png","file_name":"a"}`, http.StatusInternalServerError, kindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app, _ := newTestApp(stubIngest{err: tc.err}, stubQuery{})

			code, b := doJSON(t, app, http.MethodPost, "/v1/image/ingest/presigned-url", tc.body)
			assert.Equal(t, tc.wantCode, code)

			e := decodeError(t, b)
			assert.Equal(t, tc.wantKind, e.Kind)
			if tc.wantKind == kindInternal {
				assert.Equal(t, internalMessage, e.Message)
				assert.NotContains(t, string(b), "5432")
			}
		})
	}
}

func TestCreatePresignedURLCountsOutcomes(t *testing.T) {
	app, reg := newTestApp(stubIngest{}, stubQuery{})

	for i := 0; i < 2; i++ {
		code, _ := doJSON(t, app, http.MethodPost, "/v1/image/ingest/presigned-url", `{"content_type":"image/jpeg","file_name":"photo.jpg"}`)
		require.Equal(t, http.StatusCreated, code)
	}

	count, err := testutil.GatherAndCount(reg, "image_ingest_presign_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetReadURL(t *testing.T) {
	app, _ := newTestApp(stubIngest{}, stubQuery{})

	code, b := doJSON(t, app, http.MethodGet, "/v1/image/"+readyID+"/read-url", "")
	require.Equal(t, http.StatusOK, code)

	var resp response.ReadURL
	require.NoError(t, json.Unmarshal(b, &resp))
	assert.Equal(t, readyID, resp.ImageID)
	assert.Equal(t, "https://cdn.example.com/ingest/"+readyID, resp.URL)

	code, b = doJSON(t, app, http.MethodGet, "/v1/image/"+pendingID+"/read-url", "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, kindNotReady, decodeError(t, b).Kind)

	code, b = doJSON(t, app, http.MethodGet, "/v1/image/"+missingID+"/read-url", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, kindNotFound, decodeError(t, b).Kind)

	code, b = doJSON(t, app, http.MethodGet, "/v1/image/not-a-ulid/read-url", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, kindBadRequest, decodeError(t, b).Kind)
}

func TestGetReadURLInternal(t *testing.T) {
	app, _ := newTestApp(stubIngest{}, stubQuery{err: errs.ErrDecodeFailed})

	code, b := doJSON(t, app, http.MethodGet, "/v1/image/"+readyID+"/read-url", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, kindInternal, decodeError(t, b).Kind)
}

func TestGetReadURLs(t *testing.T) {
	app, _ := newTestApp(stubIngest{}, stubQuery{})

	code, b := doJSON(t, app, http.MethodGet, "/v1/image/read-urls?ids="+readyID+","+pendingID, "")
	require.Equal(t, http.StatusOK, code)

	var resp response.ReadURLs
	require.NoError(t, json.Unmarshal(b, &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, readyID, resp.Items[0].ImageID)

	code, _ = doJSON(t, app, http.MethodGet, "/v1/image/read-urls", "")
	assert.Equal(t, http.StatusBadRequest, code)

	many := make([]string, 101)
	for i := range many {
		many[i] = readyID
	}
	code, _ = doJSON(t, app, http.MethodGet, "/v1/image/read-urls?ids="+strings.Join(many, ","), "")
	assert.Equal(t, http.StatusBadRequest, code)
}
