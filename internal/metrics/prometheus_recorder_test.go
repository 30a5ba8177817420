package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncDocument("markdown", ResultSuccess)
	pr.IncDocument("markdown", ResultSuccess)
	pr.IncDocument("html", ResultFailed)
	pr.ObserveRenderDuration("markdown", 3*time.Millisecond)
	pr.AddBlocks("list", 2)
	pr.AddBlocks("list", 0)

	require.InDelta(t, 2, testutil.ToFloat64(pr.documents.WithLabelValues("markdown", "success")), 0)
	require.InDelta(t, 1, testutil.ToFloat64(pr.documents.WithLabelValues("html", "failed")), 0)
	require.InDelta(t, 2, testutil.ToFloat64(pr.blocks.WithLabelValues("list")), 0)

	expected := `
# HELP docfrag_blocks_total Rendered document blocks by type
# TYPE docfrag_blocks_total counter
docfrag_blocks_total{type="list"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "docfrag_blocks_total"))

	count, err := testutil.GatherAndCount(reg, "docfrag_render_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestNilAndNoopRecorders(t *testing.T) {
	var pr *PrometheusRecorder
	require.NotPanics(t, func() {
		pr.IncDocument("markdown", ResultSuccess)
		pr.ObserveRenderDuration("markdown", time.Second)
		pr.AddBlocks("list", 1)
	})

	var r Recorder = NoopRecorder{}
	require.NotPanics(t, func() {
		r.IncDocument("html", ResultCanceled)
		r.AddBlocks("code", 3)
	})
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncDocument("html", ResultSuccess)

	path := filepath.Join(t.TempDir(), "docfrag.prom")
	require.NoError(t, WriteTextfile(path, reg))

	// #nosec G304 -- path is controlled by test.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `docfrag_documents_total{format="html",result="success"} 1`)

	err = WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "x.prom"), reg)
	require.Error(t, err)
}
