package test

import (
	"os"
	"path/filepath"
	"social_osint/shared"
	"social_osint/test/mocks"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"
)

// DummyLogger accepts every log call.
func DummyLogger(mockLogger *mocks.MockILogger) {
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Printf(gomock.Any(), gomock.Any()).AnyTimes()
}

type nopObserver struct{}

func (nopObserver) Finish() {}

// DummyMetrics accepts every metrics call.
func DummyMetrics(mockMetrics *mocks.MockIMetrics) {
	mockMetrics.EXPECT().StartWebRequestIn(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartApiRequestOut(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().StartLlmCall(gomock.Any()).Return(nopObserver{}).AnyTimes()
	mockMetrics.EXPECT().FetchPlanned(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ItemsMerged(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().MediaDownloaded(gomock.Any(), gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().AnalysisFinished(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().TargetFailed(gomock.Any()).AnyTimes()
	mockMetrics.EXPECT().ServiceStarted().AnyTimes()
}

// FakeTexts renders a text as its id followed by its values, one per line.
func FakeTexts(mockTexts *mocks.MockITexts) {
	mockTexts.EXPECT().Get(gomock.Any()).DoAndReturn(func(id string) string { return id }).AnyTimes()
	mockTexts.EXPECT().WithVals(gomock.Any(), gomock.Any()).
		DoAndReturn(func(id string, vals map[string]string) string {
			return fakeTextWithVals(id, vals)
		}).AnyTimes()
}

func fakeTextWithVals(id string, vals map[string]string) string {
	res := id
	for k, v := range vals {
		res += "\n" + k + "\t" + v
	}
	return res
}

// TempConfig returns the default configuration with its data directories under a fresh temp dir.
func TempConfig(t *testing.T) *shared.Config {
	t.Helper()
	t.Setenv("CONFIG", "")
	t.Setenv("SECRETS", "")
	cfg, err := shared.LoadConfig(writeFile(t, "config.jsonc", `{ "data_dir": "`+filepath.ToSlash(t.TempDir())+`" }`))
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}
	if err = cfg.EnsureDataDirs(); err != nil {
		t.Fatalf("failed to create data dirs: %v", err)
	}
	return cfg
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// CheckStartsWith matches strings with the given prefix.
func CheckStartsWith(prefix string) func(x any) bool {
	return func(x any) bool {
		str, ok := x.(string)
		if !ok {
			return false
		}
		return strings.HasPrefix(str, prefix)
	}
}
