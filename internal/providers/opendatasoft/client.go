package opendatasoft

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"espana-clima/internal/types"
)

// API Docs: https://help.opendatasoft.com/apis/ods-explore-v2/
// Sample request: https://public.opendatasoft.com/api/explore/v2.1/catalog/datasets/georef-spain-provincia/records?select=prov_code,prov_name&where=acom_code='13'&limit=100
const (
	DefaultBaseURL = "https://public.opendatasoft.com/api/explore/v2.1"

	// MaxPageSize is the largest limit the records endpoint accepts
	MaxPageSize = 100

	communitiesLimit = 20
)

// Datasets names the catalog datasets for each administrative level
type Datasets struct {
	Communities    string
	Provinces      string
	Municipalities string
}

// DefaultDatasets are the georef datasets published on the public catalog
var DefaultDatasets = Datasets{
	Communities:    "georef-spain-comunidad-autonoma",
	Provinces:      "georef-spain-provincia",
	Municipalities: "georef-spain-municipio",
}

// Query is one records request. Empty fields are left out of the URL.
type Query struct {
	Select  []string
	Where   string
	OrderBy string
	Limit   int
	Offset  int
}

func (q Query) values() url.Values {
	v := url.Values{}
	if len(q.Select) > 0 {
		v.Set("select", strings.Join(q.Select, ", "))
	}
	if q.Where != "" {
		v.Set("where", q.Where)
	}
	if q.OrderBy != "" {
		v.Set("order_by", q.OrderBy)
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	datasets   Datasets
	logger     *slog.Logger
}

func NewClient(baseURL string, datasets Datasets, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		datasets:   datasets,
		logger:     logger.With("component", "opendatasoft-client"),
	}
}

// GetCommunities lists every autonomous community ordered by name.
func (c *Client) GetCommunities(ctx context.Context) ([]CommunityRecord, error) {
	return getRecords[CommunityRecord](ctx, c, c.datasets.Communities, Query{
		Select:  []string{"acom_code", "acom_name"},
		OrderBy: "acom_name",
		Limit:   communitiesLimit,
	})
}

// GetProvinces lists the provinces whose parent community is communityCode.
func (c *Client) GetProvinces(ctx context.Context, communityCode string) ([]ProvinceRecord, error) {
	return getRecords[ProvinceRecord](ctx, c, c.datasets.Provinces, Query{
		Select:  []string{"prov_code", "prov_name"},
		Where:   equals("acom_code", communityCode),
		OrderBy: "prov_name",
		Limit:   MaxPageSize,
	})
}

// GetMunicipalities fetches one page of the municipalities of a province,
// ordered by name.
func (c *Client) GetMunicipalities(ctx context.Context, provinceCode string, offset, limit int) ([]MunicipalityRecord, error) {
	return getRecords[MunicipalityRecord](ctx, c, c.datasets.Municipalities, Query{
		Select:  []string{"mun_name", "geo_point_2d"},
		Where:   equals("prov_code", provinceCode),
		OrderBy: "mun_name",
		Limit:   limit,
		Offset:  offset,
	})
}

func getRecords[T any](ctx context.Context, c *Client, dataset string, query Query) ([]T, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u = u.JoinPath("catalog", "datasets", dataset, "records")
	u.RawQuery = query.values().Encode()

	c.logger.Debug("fetching catalog records",
		"dataset", dataset,
		"offset", query.Offset,
		"url", u.String(),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to fetch catalog records",
			"dataset", dataset,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch %s: %w", dataset, &types.TransportError{Err: err})
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("catalog API returned error",
			"dataset", dataset,
			"status_code", resp.StatusCode,
			"response_body", string(body),
		)
		upstreamErr := &types.UpstreamError{StatusCode: resp.StatusCode}
		var apiErr ErrorResponse
		if json.Unmarshal(body, &apiErr) == nil {
			upstreamErr.Message = apiErr.Message
		}
		return nil, fmt.Errorf("fetch %s: %w", dataset, upstreamErr)
	}

	var apiResp RecordsResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode catalog response",
			"dataset", dataset,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode %s response: %w: %w", dataset, types.ErrDecode, err)
	}

	c.logger.Debug("successfully fetched catalog records",
		"dataset", dataset,
		"offset", query.Offset,
		"count", len(apiResp.Results),
		"total_count", apiResp.TotalCount,
	)

	return apiResp.Results, nil
}

// equals builds an ODSQL equality filter against a quoted string literal
func equals(field, value string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(value)
	return fmt.Sprintf("%s = '%s'", field, escaped)
}
