package debate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// ScoreRequest is the payload the model endpoint expects for one side.
type ScoreRequest struct {
	Arguments string `json:"arguments"`
	Topic     string `json:"topic"`
}

// ScoreResult is the model's evaluation of one side. Justification and
// improvements are optional in the model reply.
type ScoreResult struct {
	Score         float64 `json:"score"`
	Justification string  `json:"justification"`
	Improvements  string  `json:"improvements"`
}

type Scorer interface {
	Score(arguments, topic string) (*ScoreResult, error)
}

type HTTPScorer struct {
	httpClient *http.Client
	url        string
}

func NewHTTPScorer(url string, timeout time.Duration) *HTTPScorer {
	return &HTTPScorer{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

func (s *HTTPScorer) Score(arguments, topic string) (*ScoreResult, error) {
	body, err := json.Marshal(ScoreRequest{Arguments: arguments, Topic: topic})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal model request: %w", err)
	}

	resp, err := s.httpClient.Post(s.url, "application/json", bytes.NewReader(body))
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("model request timed out: %w", err)
		}
		return nil, fmt.Errorf("model request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read model response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("model returned status %d: %s", resp.StatusCode, string(data))
	}

	var result ScoreResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}

	return &result, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
