package dto

import (
	"encoding/json"
	"fmt"
)

// BatchRequest is the non-interactive analysis request read from stdin or POSTed to the API.
type BatchRequest struct {
	Platforms    map[string][]string `json:"-"`
	RawPlatforms map[string]any      `json:"platforms"`
	Query        string              `json:"query"`
	FetchOptions *FetchOptions       `json:"fetch_options,omitempty"`
}

type FetchOptions struct {
	DefaultCount int                     `json:"default_count,omitempty"`
	Targets      map[string]TargetOption `json:"targets,omitempty"`
}

type TargetOption struct {
	Count int `json:"count"`
}

func (x *BatchRequest) UnmarshalJSON(data []byte) error {
	var err error
	type Y BatchRequest
	var y = (*Y)(x)
	if err = json.Unmarshal(data, y); err != nil {
		return err
	}
	y.Platforms = map[string][]string{}
	for name, raw := range y.RawPlatforms {
		if y.Platforms[name], err = getIdentities(raw); err != nil {
			return fmt.Errorf("platform '%s': %w", name, err)
		}
	}
	return nil
}

func getIdentities(raw any) ([]string, error) {
	var res []string
	if raw == nil {
		return res, nil
	}
	if slice, ok := raw.([]interface{}); ok {
		for _, s := range slice {
			if str, ok := s.(string); ok {
				res = append(res, str)
			} else {
				return res, fmt.Errorf("list of identities must only contain strings")
			}
		}
	} else if str, ok := raw.(string); ok {
		res = []string{str}
	} else {
		return res, fmt.Errorf("identities must be a single string or an array of strings")
	}
	return res, nil
}

type TargetFailure struct {
	Platform string `json:"platform"`
	Identity string `json:"identity"`
	Reason   string `json:"reason"`
}

type AnalyzeResponse struct {
	RunId    string          `json:"run_id"`
	Report   string          `json:"report"`
	Failures []TargetFailure `json:"failures"`
}

type CacheEntry struct {
	FileName      string `json:"file_name"`
	Platform      string `json:"platform"`
	Identity      string `json:"identity"`
	LastFetched   string `json:"last_fetched"`
	Age           string `json:"age"`
	Items         string `json:"items"`
	MediaAnalyses int    `json:"media_analyses"`
	MediaFiles    int    `json:"media_files"`
	LastOutcome   string `json:"last_outcome,omitempty"`
}

type PlatformsResponse struct {
	Platforms []string `json:"platforms"`
}

// SavedReport is the JSON output file format.
type SavedReport struct {
	Metadata map[string]any `json:"analysis_metadata"`
	Report   string         `json:"analysis_report_markdown"`
}
