// Package metrics holds the prometheus collectors of the generator.
// Nothing is served over the network; the registry is written to a textfile on demand.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for Strings.
const (
	ResultOK    = "ok"
	ResultEmpty = "empty"
	ResultError = "error"
)

var (
	// Registry is the private registry every collector of this module registers with.
	Registry = prometheus.NewRegistry() //nolint:gochecknoglobals

	// Strings counts generated strings by strategy and result.
	Strings = promauto.With(Registry).NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: "randomstring",
			Name:      "strings_total",
			Help:      "Number of generated strings, differentiated by strategy and result.",
		},
		[]string{"strategy", "result"},
	)

	// Characters counts emitted alphabet characters by strategy.
	Characters = promauto.With(Registry).NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Namespace: "randomstring",
			Name:      "characters_total",
			Help:      "Number of generated characters, differentiated by strategy.",
		},
		[]string{"strategy"},
	)
)

// WriteTextfile writes the registry in text exposition format to path.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}

	return nil
}
