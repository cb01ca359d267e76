package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
)

// RecoClient implements PlaceProvider against the recommendation backend.
//
// Each call is a single HTTP attempt bounded by the client timeout and the
// caller's context. The client is safe for concurrent use.
type RecoClient struct {
	session *http.Client
	baseURL string
}

func NewRecoClient(baseURL string, timeout time.Duration) (*RecoClient, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("recommendation base url is empty")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &RecoClient{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

type placeResult struct {
	Name     string  `json:"name"`
	Address  string  `json:"address"`
	Rating   float64 `json:"rating"`
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
	PlaceID string  `json:"place_id"`
	Photo   *string `json:"photo"`
}

type placesResponse struct {
	Results []placeResult `json:"results"`
}

type cityRequest struct {
	Keywords []string `json:"keywords"`
}

type cityResponse struct {
	Cities []domain.City `json:"cities"`
}

// SearchPlaces calls GET /api/places?query=.
func (c *RecoClient) SearchPlaces(ctx context.Context, query string) (_ []domain.Landmark, err error) {
	defer obs.Time(ctx, "reco.SearchPlaces")(&err)

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("search places: query must be non-empty")
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/api/places", nil)
	if err != nil {
		return nil, fmt.Errorf("search places request: %w", err)
	}
	q := req.URL.Query()
	q.Set("query", query)
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("search places %q: %w", query, err)
	}
	defer resp.Body.Close()

	var decoded placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	out := make([]domain.Landmark, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		if strings.TrimSpace(r.Name) == "" {
			continue
		}
		out = append(out, domain.Landmark{
			ID:      r.PlaceID,
			Name:    r.Name,
			Address: r.Address,
			Rating:  r.Rating,
			Location: domain.Coordinates{
				Lat: r.Location.Lat,
				Lon: r.Location.Lng,
			},
			Photo: r.Photo,
		})
	}

	return out, nil
}

// RecommendCities calls POST /api/recommend/city.
func (c *RecoClient) RecommendCities(ctx context.Context, keywords []string) (_ []domain.City, err error) {
	defer obs.Time(ctx, "reco.RecommendCities")(&err)

	if keywords == nil {
		keywords = []string{}
	}

	payload, err := json.Marshal(cityRequest{Keywords: keywords})
	if err != nil {
		return nil, fmt.Errorf("marshal city request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/api/recommend/city", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("recommend cities request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("recommend cities: %w", err)
	}
	defer resp.Body.Close()

	var decoded cityResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode city response: %w", err)
	}

	if decoded.Cities == nil {
		return []domain.City{}, nil
	}
	return decoded.Cities, nil
}
