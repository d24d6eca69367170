package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"flicks-backend/internal/config"
	"flicks-backend/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	posterImageBase = "https://image.tmdb.org/t/p/w342/"
	bannerImageBase = "https://image.tmdb.org/t/p/w1280/"
)

// CatalogClient talks to the external film catalog. Calls are never retried.
type CatalogClient interface {
	Search(ctx context.Context, query string) ([]models.CatalogSearchResult, error)
	Fetch(ctx context.Context, imdbID string) (*models.CatalogFilm, error)
}

type imdbClient struct {
	config     config.CatalogConfig
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewCatalogClient(cfg config.CatalogConfig, logger *logrus.Logger) CatalogClient {
	return &imdbClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

type imdbSearchResponse struct {
	Results []struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Image       string `json:"image"`
		Description string `json:"description"`
	} `json:"results"`
	ErrorMessage string `json:"errorMessage"`
}

type imdbNamed struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type imdbPerson struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type imdbTitleResponse struct {
	ID               string       `json:"id"`
	Title            string       `json:"title"`
	Year             string       `json:"year"`
	Plot             string       `json:"plot"`
	RuntimeMins      string       `json:"runtimeMins"`
	IMDbRating       string       `json:"imDbRating"`
	MetacriticRating string       `json:"metacriticRating"`
	ContentRating    string       `json:"contentRating"`
	GenreList        []imdbNamed  `json:"genreList"`
	CountryList      []imdbNamed  `json:"countryList"`
	LanguageList     []imdbNamed  `json:"languageList"`
	WriterList       []imdbPerson `json:"writerList"`
	DirectorList     []imdbPerson `json:"directorList"`
	ActorList        []imdbPerson `json:"actorList"`
	Ratings          *struct {
		RottenTomatoes string `json:"rottenTomatoes"`
	} `json:"ratings"`
	Trailer *struct {
		Link string `json:"link"`
	} `json:"trailer"`
	Posters *struct {
		Posters   []struct{ ID string } `json:"posters"`
		Backdrops []struct{ ID string } `json:"backdrops"`
	} `json:"posters"`
	ErrorMessage string `json:"errorMessage"`
}

func (c *imdbClient) Search(ctx context.Context, query string) ([]models.CatalogSearchResult, error) {
	endpoint := fmt.Sprintf("%s/en/API/SearchMovie/%s/%s",
		strings.TrimRight(c.config.BaseURL, "/"),
		c.config.APIKey,
		url.PathEscape(query),
	)

	var resp imdbSearchResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.ErrorMessage != "" {
		return nil, fmt.Errorf("catalog search failed: %s", resp.ErrorMessage)
	}

	results := make([]models.CatalogSearchResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, models.CatalogSearchResult{
			IMDBID: r.ID,
			Name:   r.Title,
			Photo:  imageLink(r.Image),
			Year:   extractYear(r.Description),
		})
	}
	return results, nil
}

func (c *imdbClient) Fetch(ctx context.Context, imdbID string) (*models.CatalogFilm, error) {
	endpoint := fmt.Sprintf("%s/en/API/Title/%s/%s/Trailer,Ratings,Posters,",
		strings.TrimRight(c.config.BaseURL, "/"),
		c.config.APIKey,
		url.PathEscape(imdbID),
	)

	var resp imdbTitleResponse
	if err := c.get(ctx, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.ErrorMessage != "" || resp.Title == "" {
		return nil, fmt.Errorf("catalog fetch failed for %s: %s", imdbID, resp.ErrorMessage)
	}

	film := &models.CatalogFilm{
		IMDBID:        imdbID,
		Name:          resp.Title,
		Plot:          resp.Plot,
		Year:          atoi(resp.Year),
		Time:          intPtr(resp.RuntimeMins),
		IMDB:          atof(resp.IMDbRating),
		Metacritic:    intPtr(resp.MetacriticRating),
		ContentRating: resp.ContentRating,
		Genres:        values(resp.GenreList),
		Countries:     values(resp.CountryList),
		Languages:     values(resp.LanguageList),
		Writers:       people(resp.WriterList),
		Directors:     people(resp.DirectorList),
		Actors:        people(resp.ActorList),
	}
	if resp.Ratings != nil {
		film.Rotten = intPtr(resp.Ratings.RottenTomatoes)
	}
	if resp.Trailer != nil {
		film.Trailer = resp.Trailer.Link
	}
	if resp.Posters != nil {
		if len(resp.Posters.Posters) > 0 {
			film.Photo = posterImageBase + resp.Posters.Posters[0].ID
		}
		if len(resp.Posters.Backdrops) > 0 {
			film.Banner = bannerImageBase + resp.Posters.Backdrops[0].ID
		}
	}
	if n := c.config.ActorsCount; n > 0 && len(film.Actors) > n {
		film.Actors = film.Actors[:n]
	}

	c.logger.WithFields(logrus.Fields{
		"imdb_id": imdbID,
		"name":    film.Name,
	}).Info("Fetched film from catalog")
	return film, nil
}

func (c *imdbClient) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode catalog response: %w", err)
	}
	return nil
}

var yearPattern = regexp.MustCompile(`\((\d{4})\)`)

// extractYear reads the year out of a search description like "(2010) Drama".
func extractYear(description string) string {
	m := yearPattern.FindStringSubmatch(description)
	if m == nil {
		return ""
	}
	return m[1]
}

func imageLink(link string) string {
	if link == "" || strings.Contains(link, "nopicture") {
		return ""
	}
	return link
}

func values(list []imdbNamed) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, item.Value)
	}
	return out
}

func people(list []imdbPerson) []models.CatalogArtist {
	out := make([]models.CatalogArtist, 0, len(list))
	for _, p := range list {
		if p.ID == "" {
			continue
		}
		out = append(out, models.CatalogArtist{
			IMDBID: p.ID,
			Name:   p.Name,
			Photo:  imageLink(p.Image),
		})
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// intPtr returns nil for empty or non-numeric input.
func intPtr(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &n
}
