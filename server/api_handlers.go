package server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"social_osint/dto"
	"social_osint/logic"
	"social_osint/shared"
)

type apiHandlerGroup struct {
	cfg      *shared.Config
	logger   shared.ILogger
	analyzer logic.IAnalyzer
	admin    logic.ICacheAdmin
	reports  logic.IReportWriter
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	analyzer logic.IAnalyzer,
	admin logic.ICacheAdmin,
	reports logic.IReportWriter,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:      cfg,
		logger:   logger,
		analyzer: analyzer,
		admin:    admin,
		reports:  reports,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"POST", "/analyze", func(w http.ResponseWriter, r *http.Request) { hg.postAnalyze(w, r) }},
		{"GET", "/cache", func(w http.ResponseWriter, r *http.Request) { hg.getCache(w, r) }},
		{"GET", "/platforms", func(w http.ResponseWriter, r *http.Request) { hg.getPlatforms(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (hg *apiHandlerGroup) postAnalyze(w http.ResponseWriter, r *http.Request) {
	hg.logger.Info("POST /api/analyze: Request received")

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var batch dto.BatchRequest
	if err := json.Unmarshal(body, &batch); err != nil {
		hg.logger.Infof("Invalid analysis request: %v", err)
		writeErrorResponse(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	req, err := logic.RequestFromBatch(hg.cfg, &batch)
	if err != nil {
		writeErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	// A client that hangs up does not abort the run; fetched data is still cached
	res, err := hg.analyzer.Analyze(context.WithoutCancel(r.Context()), req)
	if err != nil {
		code := http.StatusBadGateway
		if errors.Is(err, logic.ErrNoData) {
			code = http.StatusUnprocessableEntity
		}
		resp := errorResp{Error: err.Error(), Status: code}
		if res != nil {
			resp.Failures = res.Failures
		}
		writeErrorWithDetails(w, resp)
		return
	}

	if hg.cfg.AutoSave {
		if _, err = hg.reports.Save(res, hg.cfg.OutputFormat); err != nil {
			hg.logger.Errorf("Failed to save report for run %s: %v", res.RunId, err)
		}
	}
	writeJsonResponse(hg.logger, w, &dto.AnalyzeResponse{
		RunId:    res.RunId,
		Report:   res.Report(),
		Failures: res.Failures,
	})
}

func (hg *apiHandlerGroup) getCache(w http.ResponseWriter, r *http.Request) {
	writeJsonResponse(hg.logger, w, hg.admin.Status())
}

func (hg *apiHandlerGroup) getPlatforms(w http.ResponseWriter, r *http.Request) {
	resp := dto.PlatformsResponse{Platforms: []string{}}
	for _, p := range hg.cfg.AvailablePlatforms() {
		resp.Platforms = append(resp.Platforms, string(p))
	}
	writeJsonResponse(hg.logger, w, &resp)
}
