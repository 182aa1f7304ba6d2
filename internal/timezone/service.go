package timezone

import (
	"fmt"
	"sync"

	"github.com/ringsaturn/tzf"

	"espana-clima/internal/types"
)

// Service resolves the IANA zone of a point
type Service interface {
	GetTimezone(coords types.Coords) (string, error)
}

type finderService struct {
	finder tzf.F
}

var (
	instance *finderService
	initErr  error
	once     sync.Once
)

// NewService returns the process-wide finder. The default finder keeps its
// polygon index in memory, so it is built once.
func NewService() (Service, error) {
	once.Do(func() {
		finder, err := tzf.NewDefaultFinder()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", err)
			return
		}
		instance = &finderService{finder: finder}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns names like "Europe/Madrid" or "Atlantic/Canary".
func (s *finderService) GetTimezone(coords types.Coords) (string, error) {
	name := s.finder.GetTimezoneName(coords.Longitude, coords.Latitude)
	if name == "" {
		return "", fmt.Errorf("could not determine timezone for %s", coords)
	}
	return name, nil
}
