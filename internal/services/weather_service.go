package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"wayfare/internal/models/response_models"
	"wayfare/pkg/config"
	"wayfare/pkg/utils"
)

type WeatherServiceInterface interface {
	GetCurrent(ctx context.Context, city string) (*response_models.WeatherReport, error)
}

// OpenWeatherClient fetches current conditions from OpenWeatherMap and
// normalizes them to the small payload the frontend renders.
type OpenWeatherClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewOpenWeatherClient(cfg *config.Config) WeatherServiceInterface {
	return &OpenWeatherClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     cfg.WeatherAPIKey,
		baseURL:    cfg.WeatherBaseURL,
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Main *struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (c *OpenWeatherClient) GetCurrent(ctx context.Context, city string) (*response_models.WeatherReport, error) {
	endpoint := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(city), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, utils.ErrWeatherUpstream
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, utils.ErrCityNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", utils.ErrWeatherUpstream, resp.StatusCode)
	}

	var payload openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrWeatherUpstream, err)
	}

	if payload.Main == nil || len(payload.Weather) == 0 {
		return nil, fmt.Errorf("%w: unexpected response shape", utils.ErrWeatherUpstream)
	}

	name := payload.Name
	if name == "" {
		name = city
	}

	return &response_models.WeatherReport{
		City:        name,
		Temperature: math.Round(payload.Main.Temp*10) / 10,
		Description: payload.Weather[0].Description,
	}, nil
}
