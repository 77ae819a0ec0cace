package contract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ballotpaper/go-ballotpaper/common/types"
)

var (
	// ErrNoLogs is returned when a getter produced no output.
	ErrNoLogs = errors.New("query returned no logs")
	// ErrMalformedResults is returned when the results getter output does not match ResultsSchema.
	ErrMalformedResults = errors.New("malformed results")
)

// DecodeText returns the first log line of a response.
func DecodeText(resp *Response) (string, error) {
	if len(resp.Logs) == 0 {
		return "", ErrNoLogs
	}
	return resp.Logs[0], nil
}

// DecodeCandidates splits the newline separated candidate list. An empty list yields no candidates.
func DecodeCandidates(resp *Response) ([]types.Candidate, error) {
	text, err := DecodeText(resp)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return []types.Candidate{}, nil
	}
	names := strings.Split(text, "\n")
	candidates := make([]types.Candidate, 0, len(names))
	for i, name := range names {
		candidates = append(candidates, types.Candidate{Name: name, Index: i})
	}
	return candidates, nil
}

// DecodeResults parses the JSON tally returned by the results getter.
func DecodeResults(resp *Response) ([]types.VoteResult, error) {
	text, err := DecodeText(resp)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResults, err)
	}
	if err := resultsSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResults, err)
	}
	results := []types.VoteResult{}
	if err := json.Unmarshal([]byte(text), &results); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	return results, nil
}
