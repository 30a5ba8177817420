package metrics

import (
	prom "github.com/prometheus/client_golang/prometheus"

	derrors "git.home.luguber.info/inful/docfrag/internal/errors"
)

// WriteTextfile writes everything gathered from g to path in the text
// exposition format. The file is replaced atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return derrors.OutputError(path, err)
	}
	return nil
}
