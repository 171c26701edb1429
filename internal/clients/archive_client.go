package clients

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/corvid-labs/corpusmood/internal/models"
)

const (
	ARCHIVE_API_ENDPOINT = "https://api.nytimes.com/svc/archive/v1"
	MAX_RETRIES          = 5
	INITIAL_BACKOFF      = 1 * time.Second
	MAX_BACKOFF          = 32 * time.Second
)

var (
	archiveInstance *ArchiveClient
	archiveOnce     sync.Once
)

type ArchiveClient struct {
	Client  *http.Client
	APIKey  string
	BaseURL string
}

func GetArchiveClient() *ArchiveClient {
	archiveOnce.Do(func() {
		baseURL := os.Getenv("ARCHIVE_API_BASE_URL")
		if baseURL == "" {
			baseURL = ARCHIVE_API_ENDPOINT
		}
		archiveInstance = &ArchiveClient{
			Client:  &http.Client{},
			APIKey:  os.Getenv("ARCHIVE_API_KEY"),
			BaseURL: baseURL,
		}
	})
	return archiveInstance
}

// GetMonth fetches every article the archive holds for one month.
func (a *ArchiveClient) GetMonth(year int, month time.Month) (*models.ArchiveResponse, error) {
	if a.APIKey == "" {
		slog.Error("[ArchiveClient] API key is missing")
		return nil, errors.New("[ArchiveClient] API key is missing")
	}
	url := fmt.Sprintf("%s/%d/%d.json?api-key=%s", a.BaseURL, year, int(month), a.APIKey)

	var response *models.ArchiveResponse
	var lastErr error
	backoff := INITIAL_BACKOFF

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		slog.Info("[ArchiveClient] Fetching archive month",
			slog.Int("year", year), slog.Int("month", int(month)), slog.Int("attempt", attempt))
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}

		res, err := a.Client.Do(req)
		if err != nil {
			slog.Error("[ArchiveClient] Request failed", slog.String("error", err.Error()))
			lastErr = err
		} else {
			defer res.Body.Close()

			switch res.StatusCode {
			case http.StatusOK:
				body, err := io.ReadAll(res.Body)
				if err != nil {
					slog.Error("[ArchiveClient] Failed to read response body", slog.String("error", err.Error()))
					return nil, err
				}
				err = json.Unmarshal(body, &response)
				if err != nil {
					slog.Error("[ArchiveClient] Failed to parse JSON response", slog.String("error", err.Error()))
					return nil, err
				}

				slog.Info("[ArchiveClient] Successfully fetched archive month",
					slog.Int("docs", len(response.Response.Docs)))
				return response, nil
			case http.StatusBadRequest:
				slog.Warn("[ArchiveClient] Bad request: check year/month parameters")
				return nil, errors.New("[ArchiveClient] Bad request: check year/month parameters")
			case http.StatusUnauthorized:
				slog.Error("[ArchiveClient] Invalid API Key, check credentials")
				return nil, errors.New("[ArchiveClient] Invalid API Key, check credentials")
			case http.StatusTooManyRequests:
				slog.Warn("[ArchiveClient] Rate limit exceeded, retrying...",
					slog.Duration("backoff", backoff), slog.Int("attempt", attempt))
				_, err = io.Copy(io.Discard, res.Body)
				if err != nil {
					slog.Error("[ArchiveClient] Failed to drain response body", slog.String("error", err.Error()))
					return nil, err
				}
				time.Sleep(backoff)
				backoff *= 2
				if backoff > MAX_BACKOFF {
					backoff = MAX_BACKOFF
				}
			case http.StatusForbidden:
				slog.Error("[ArchiveClient] Access forbidden, check API key permissions")
				return nil, errors.New("[ArchiveClient] API key lacks required permissions")
			case http.StatusInternalServerError:
				slog.Warn("[ArchiveClient] Server Error", slog.Int("statusCode", res.StatusCode),
					slog.Duration("backoff", backoff), slog.Int("attempt", attempt))
				time.Sleep(backoff)
				backoff *= 2
				if backoff > MAX_BACKOFF {
					backoff = MAX_BACKOFF
				}
			default:
				slog.Warn("[ArchiveClient] Unexpected Response", slog.Int("statusCode", res.StatusCode))
				return nil, errors.New("[ArchiveClient] Unexpected status code")
			}
		}
		if attempt == MAX_RETRIES {
			slog.Error("[ArchiveClient] Failed after max retries")
			lastErr = errors.New("[ArchiveClient] failed after max retries")
			break
		}
	}
	return nil, lastErr
}
