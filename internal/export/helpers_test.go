package export

import (
	"context"
	"testing"

	"github.com/iksnae/chatstat/internal"
)

func testReport(t *testing.T, sender string) *internal.Report {
	t.Helper()
	stop := internal.NewStopWords("the", "a", "an", "and", "is", "at", "see", "you", "hello")
	report, err := internal.Analyze(context.Background(), internal.CreateTestRecordSet(), sender, internal.DefaultAnalyzeOptions(stop))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	return report
}
