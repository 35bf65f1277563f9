package directory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/qiblatech/minaret/internal/model"
)

// ErrSourceUnavailable covers every remote-source failure: unconfigured URL,
// network error, non-200 response, or an empty parse result.
var ErrSourceUnavailable = errors.New("directory source unavailable")

// Loader fetches the mosque directory from a published CSV sheet. Fetching
// is a bounded one-shot call; on any failure Load degrades to the bundled
// dataset with no further I/O.
type Loader struct {
	// SheetURL is the published CSV endpoint. Empty means unconfigured.
	SheetURL string

	httpClient *http.Client
}

// NewLoader builds a loader for the given sheet URL.
func NewLoader(sheetURL string) *Loader {
	return &Loader{
		SheetURL: sheetURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Load returns the directory, preferring the remote sheet and falling back
// to the bundled dataset. It never fails; degradation is logged, not
// surfaced to the caller.
func (l *Loader) Load(ctx context.Context) []model.Mosque {
	mosques, err := l.FetchRemote(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to bundled mosque dataset")
		return Bundled()
	}
	log.Info().Int("count", len(mosques)).Msg("loaded mosque directory from sheet")
	return mosques
}

// FetchRemote fetches and parses the published sheet. Returns
// ErrSourceUnavailable (wrapped) when the sheet cannot be used.
func (l *Loader) FetchRemote(ctx context.Context) ([]model.Mosque, error) {
	if l.SheetURL == "" {
		return nil, fmt.Errorf("%w: no sheet URL configured", ErrSourceUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.SheetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: sheet returned status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	mosques := ParseCSV(string(body))
	if len(mosques) == 0 {
		return nil, fmt.Errorf("%w: sheet parsed to zero rows", ErrSourceUnavailable)
	}
	return mosques, nil
}
