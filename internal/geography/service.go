package geography

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"

	"espana-clima/internal/config"
	"espana-clima/internal/providers/opendatasoft"
	"espana-clima/internal/types"
)

// PageSize is the number of municipalities requested per upstream call
const PageSize = opendatasoft.MaxPageSize

// Query parameter names, reported back when a code is missing
const (
	ParamCommunityCode = "comunidad_code"
	ParamProvinceCode  = "provincia_code"
)

// Provider fetches raw catalog records for each administrative level.
type Provider interface {
	GetCommunities(ctx context.Context) ([]opendatasoft.CommunityRecord, error)
	GetProvinces(ctx context.Context, communityCode string) ([]opendatasoft.ProvinceRecord, error)
	GetMunicipalities(ctx context.Context, provinceCode string, offset, limit int) ([]opendatasoft.MunicipalityRecord, error)
}

// Service lists Spain's communities, provinces and municipalities.
type Service interface {
	ListCommunities(ctx context.Context) ([]types.Region, error)
	ListProvinces(ctx context.Context, communityCode string) ([]types.Region, error)
	ListMunicipalities(ctx context.Context, provinceCode string) ([]types.Municipality, error)
	// MunicipalityPages yields one page per upstream call. Iteration ends
	// after the first short page or the first error.
	MunicipalityPages(ctx context.Context, provinceCode string) iter.Seq2[[]types.Municipality, error]
}

type geographyService struct {
	provider Provider
	logger   *slog.Logger
}

// NewGeographyService creates a geography service backed by the OpenDataSoft catalog.
func NewGeographyService(cfg *config.Config, logger *slog.Logger) Service {
	client := opendatasoft.NewClient(
		cfg.Geography.BaseURL,
		opendatasoft.Datasets{
			Communities:    cfg.Geography.CommunitiesDataset,
			Provinces:      cfg.Geography.ProvincesDataset,
			Municipalities: cfg.Geography.MunicipalitiesDataset,
		},
		cfg.Upstream.Timeout,
		logger,
	)
	return NewGeographyServiceWithProvider(client, logger)
}

// NewGeographyServiceWithProvider creates a geography service with a custom provider.
// This is useful for testing with mock providers.
func NewGeographyServiceWithProvider(provider Provider, logger *slog.Logger) Service {
	return &geographyService{
		provider: provider,
		logger:   logger.With("component", "geography-service"),
	}
}

func (s *geographyService) ListCommunities(ctx context.Context) ([]types.Region, error) {
	records, err := s.provider.GetCommunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get communities: %w", err)
	}
	if len(records) == 0 {
		s.logger.Warn("catalog returned no communities")
		return nil, fmt.Errorf("no communities found: %w", types.ErrEmptyResult)
	}

	regions := make([]types.Region, 0, len(records))
	for _, r := range records {
		regions = append(regions, types.Region{
			Code: string(r.AcomCode),
			Name: string(r.AcomName),
		})
	}
	return regions, nil
}

func (s *geographyService) ListProvinces(ctx context.Context, communityCode string) ([]types.Region, error) {
	communityCode = strings.TrimSpace(communityCode)
	if communityCode == "" {
		return nil, &types.MissingParameterError{Param: ParamCommunityCode}
	}

	records, err := s.provider.GetProvinces(ctx, communityCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get provinces for community %s: %w", communityCode, err)
	}
	if len(records) == 0 {
		s.logger.Warn("catalog returned no provinces", "community_code", communityCode)
		return nil, fmt.Errorf("no provinces found for community %s: %w", communityCode, types.ErrEmptyResult)
	}

	regions := make([]types.Region, 0, len(records))
	for _, r := range records {
		regions = append(regions, types.Region{
			Code: string(r.ProvCode),
			Name: string(r.ProvName),
		})
	}
	return regions, nil
}

func (s *geographyService) MunicipalityPages(ctx context.Context, provinceCode string) iter.Seq2[[]types.Municipality, error] {
	provinceCode = strings.TrimSpace(provinceCode)

	return func(yield func([]types.Municipality, error) bool) {
		if provinceCode == "" {
			yield(nil, &types.MissingParameterError{Param: ParamProvinceCode})
			return
		}

		for offset := 0; ; offset += PageSize {
			records, err := s.provider.GetMunicipalities(ctx, provinceCode, offset, PageSize)
			if err != nil {
				yield(nil, fmt.Errorf("failed to get municipalities for province %s at offset %d: %w", provinceCode, offset, err))
				return
			}

			s.logger.Debug("fetched municipality page",
				"province_code", provinceCode,
				"offset", offset,
				"count", len(records),
			)

			if !yield(toMunicipalities(records), nil) {
				return
			}
			if len(records) < PageSize {
				return
			}
		}
	}
}

// ListMunicipalities drains MunicipalityPages. A failure on any page
// discards everything fetched before it.
func (s *geographyService) ListMunicipalities(ctx context.Context, provinceCode string) ([]types.Municipality, error) {
	var all []types.Municipality
	for page, err := range s.MunicipalityPages(ctx, provinceCode) {
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
	}

	if len(all) == 0 {
		s.logger.Warn("catalog returned no municipalities", "province_code", provinceCode)
		return nil, fmt.Errorf("no municipalities found for province %s: %w", provinceCode, types.ErrEmptyResult)
	}

	s.logger.Debug("aggregated municipalities",
		"province_code", provinceCode,
		"total", len(all),
	)
	return all, nil
}

func toMunicipalities(records []opendatasoft.MunicipalityRecord) []types.Municipality {
	page := make([]types.Municipality, 0, len(records))
	for _, r := range records {
		page = append(page, types.Municipality{
			Name:        string(r.MunName),
			Coordinates: types.NewCoords(r.GeoPoint2D.Lat, r.GeoPoint2D.Lon),
		})
	}
	return page
}
