// Package metrics records rendering metrics.
//
// Components take a Recorder and default to NoopRecorder, so metrics stay
// optional and callers never nil-check. PrometheusRecorder backs the CLI when
// metrics.textfile is configured; WriteTextfile then dumps the registry in
// the node exporter textfile collector format at the end of a run.
package metrics
