package opendatasoft

import (
	"encoding/json"
	"fmt"
)

// Text decodes a catalog text field. Some georef datasets expose
// multivalued fields, which arrive as arrays; the first value wins.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = Text(s)
		return nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to unmarshal text field: %w", err)
	}
	if len(values) == 0 {
		*t = ""
		return nil
	}
	*t = Text(values[0])
	return nil
}

// RecordsResponse is the body of /catalog/datasets/{dataset}/records
type RecordsResponse[T any] struct {
	TotalCount int `json:"total_count"`
	Results    []T `json:"results"`
}

// ErrorResponse is what the catalog returns for rejected queries
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

type CommunityRecord struct {
	AcomCode Text `json:"acom_code"`
	AcomName Text `json:"acom_name"`
}

type ProvinceRecord struct {
	ProvCode Text `json:"prov_code"`
	ProvName Text `json:"prov_name"`
}

type MunicipalityRecord struct {
	MunName    Text     `json:"mun_name"`
	GeoPoint2D GeoPoint `json:"geo_point_2d"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
