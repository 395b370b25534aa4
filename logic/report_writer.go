package logic

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"social_osint/dal"
	"social_osint/dto"
	"social_osint/shared"
	"strings"
	"time"
	"unicode"
)

const maxQueryInName = 30

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_report_writer.go -package mocks social_osint/logic IReportWriter

type IReportWriter interface {
	// Save writes the report to the outputs directory and returns its path.
	Save(res *AnalysisResult, format string) (string, error)
	// Render returns the report as it would be saved.
	Render(res *AnalysisResult, format string) ([]byte, error)
}

type reportWriter struct {
	cfg    *shared.Config
	logger shared.ILogger
	repo   dal.IRepo
	now    func() time.Time
}

func NewReportWriter(cfg *shared.Config, logger shared.ILogger, repo dal.IRepo) IReportWriter {
	return &reportWriter{
		cfg:    cfg,
		logger: logger,
		repo:   repo,
		now:    time.Now,
	}
}

// safeQuery keeps letters, digits, spaces, '_' and '-' from the start of the query.
func safeQuery(query string) string {
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if n == maxQueryInName {
			break
		}
		n++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(" _-", r) {
			sb.WriteRune(r)
		}
	}
	if res := strings.TrimSpace(sb.String()); res != "" {
		return res
	}
	return "query"
}

func reportFileName(ts time.Time, platforms []string, query, format string) string {
	safePlatforms := strings.Join(platforms, "_")
	if safePlatforms == "" {
		safePlatforms = "platforms"
	}
	ext := "md"
	if format == shared.FormatJson {
		ext = "json"
	}
	return fmt.Sprintf("analysis_%s_%s_%s.%s", ts.Format("20060102_150405"), safePlatforms, safeQuery(query), ext)
}

func (rw *reportWriter) Render(res *AnalysisResult, format string) ([]byte, error) {
	if format != shared.FormatJson {
		return []byte(res.Report()), nil
	}
	saved := dto.SavedReport{
		Metadata: res.Metadata(rw.cfg),
		Report:   res.Body,
	}
	return json.MarshalIndent(&saved, "", "  ")
}

func (rw *reportWriter) Save(res *AnalysisResult, format string) (string, error) {
	data, err := rw.Render(res, format)
	if err != nil {
		return "", err
	}
	path := filepath.Join(rw.cfg.OutputsDir(), reportFileName(rw.now(), res.Platforms, res.Query, format))
	if err = shared.WriteFileAtomic(path, data); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	rw.logger.Infof("Analysis saved to: %s", path)
	if err = rw.repo.SetReportPath(res.RunId, path); err != nil {
		rw.logger.Errorf("Failed to record report path for run %s: %v", res.RunId, err)
	}
	return path, nil
}
