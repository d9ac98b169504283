package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrNotFound is returned when the geocoder has no result for the input.
var ErrNotFound = errors.New("no geocoding result")

type Place struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

//*******************************************
// nominatim client
//*******************************************

type Client struct {
	base_url string
	client   *http.Client
}

func NewClient(base_url string) *Client {
	return &Client{
		base_url: base_url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Search resolves free-form text to a coordinate.
func (self *Client) Search(ctx context.Context, query string) (Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	var results []_SearchResult
	if err := self._Get(ctx, "/search", params, &results); err != nil {
		return Place{}, err
	}
	if len(results) == 0 {
		return Place{}, ErrNotFound
	}
	return results[0].Place()
}

// Reverse resolves a coordinate to a display name.
func (self *Client) Reverse(ctx context.Context, lat, lon float64) (Place, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")
	var result _SearchResult
	if err := self._Get(ctx, "/reverse", params, &result); err != nil {
		return Place{}, err
	}
	if result.Error != "" || result.DisplayName == "" {
		return Place{}, ErrNotFound
	}
	return result.Place()
}

type _SearchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func (self _SearchResult) Place() (Place, error) {
	lat, err := strconv.ParseFloat(self.Lat, 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid latitude in geocoder response: %w", err)
	}
	lon, err := strconv.ParseFloat(self.Lon, 64)
	if err != nil {
		return Place{}, fmt.Errorf("invalid longitude in geocoder response: %w", err)
	}
	return Place{
		Lat:         lat,
		Lon:         lon,
		DisplayName: self.DisplayName,
	}, nil
}

func (self *Client) _Get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, self.base_url+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build geocoder request: %w", err)
	}
	req.Header.Set("User-Agent", "go-safewalk")
	resp, err := self.client.Do(req)
	if err != nil {
		return fmt.Errorf("geocoder request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected geocoder status: %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode geocoder response: %w", err)
	}
	return nil
}
