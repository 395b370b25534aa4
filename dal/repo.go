package dal

import (
	"database/sql"
	"embed"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"social_osint/shared"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks social_osint/dal IRepo

type IRepo interface {
	InitUpdateDb()
	AddRun(run *AnalysisRun) error
	FinishRun(id string, finishedAt time.Time, status, reportPath string) error
	SetReportPath(id, reportPath string) error
	AddFetchOutcome(outcome *FetchOutcome) error
	GetLastOutcomes() (map[string]*FetchOutcome, error)
	GetRecentRuns(limit int) ([]*AnalysisRun, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Debugf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Debugf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) AddRun(run *AnalysisRun) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO analysis_runs (id, started_at, query, mode, status, report_path)
		VALUES(?, ?, ?, ?, ?, ?)`,
		run.Id, run.StartedAt, run.Query, run.Mode, run.Status, run.ReportPath)
	return err
}

func (repo *Repo) FinishRun(id string, finishedAt time.Time, status, reportPath string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE analysis_runs SET finished_at=?, status=?, report_path=? WHERE id=?`,
		finishedAt, status, reportPath, id)
	return err
}

func (repo *Repo) SetReportPath(id, reportPath string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`UPDATE analysis_runs SET report_path=? WHERE id=?`, reportPath, id)
	return err
}

func (repo *Repo) AddFetchOutcome(outcome *FetchOutcome) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO fetch_outcomes (run_id, platform, identity, fetched_at, item_count, failure)
		VALUES(?, ?, ?, ?, ?, ?)`,
		outcome.RunId, outcome.Platform, outcome.Identity, outcome.FetchedAt, outcome.ItemCount, outcome.Failure)
	return err
}

// GetLastOutcomes returns the most recent outcome per target, keyed by "platform:identity".
func (repo *Repo) GetLastOutcomes() (map[string]*FetchOutcome, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT run_id, platform, identity, fetched_at, item_count, failure
		FROM fetch_outcomes ORDER BY fetched_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := map[string]*FetchOutcome{}
	for rows.Next() {
		o := FetchOutcome{}
		if err = rows.Scan(&o.RunId, &o.Platform, &o.Identity, &o.FetchedAt, &o.ItemCount, &o.Failure); err != nil {
			return nil, err
		}
		res[o.Platform+":"+o.Identity] = &o
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetRecentRuns(limit int) ([]*AnalysisRun, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, started_at, finished_at, query, mode, status, report_path
		FROM analysis_runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*AnalysisRun
	for rows.Next() {
		r := AnalysisRun{}
		var finishedAt sql.NullTime
		err = rows.Scan(&r.Id, &r.StartedAt, &finishedAt, &r.Query, &r.Mode, &r.Status, &r.ReportPath)
		if err != nil {
			return nil, err
		}
		if finishedAt.Valid {
			r.FinishedAt = &finishedAt.Time
		}
		res = append(res, &r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
