// Package predictor adapts the trained revenue regression model. The
// model itself is opaque: an artifact file carries its coefficients and
// the column schema it was trained on, and this package refuses to score
// any vector that does not match that schema exactly.
package predictor

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/schema"
	"hotel-revenue-dashboard/utils"
)

// Predictor scores a feature vector. Deterministic for a fixed vector.
type Predictor interface {
	Predict(v models.FeatureVector) (float64, error)
}

// LinearModel is a serialized regression artifact: one weight per feature
// column plus an intercept.
type LinearModel struct {
	SchemaVersion int       `json:"schema_version"`
	Columns       []string  `json:"columns"`
	Weights       []float64 `json:"weights"`
	Intercept     float64   `json:"intercept"`
}

// LoadModel reads and validates a model artifact. The artifact's column
// list must match the shared schema exactly — training-time and runtime
// encodings are not allowed to drift.
func LoadModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("corrupt model artifact %s: %w", path, err)
	}

	if m.SchemaVersion != schema.Version {
		return nil, fmt.Errorf("model artifact schema version %d, want %d", m.SchemaVersion, schema.Version)
	}
	if len(m.Weights) != len(m.Columns) {
		return nil, fmt.Errorf("model artifact has %d weights for %d columns", len(m.Weights), len(m.Columns))
	}
	if err := matchColumns(m.Columns, schema.FeatureColumns); err != nil {
		return nil, fmt.Errorf("model artifact schema mismatch: %w", err)
	}

	return &m, nil
}

// Predict scores a feature vector. The vector's column names and order
// must match the model's training schema.
func (m *LinearModel) Predict(v models.FeatureVector) (float64, error) {
	if len(v.Values) != len(v.Columns) {
		return 0, fmt.Errorf("feature vector has %d values for %d columns", len(v.Values), len(v.Columns))
	}
	if err := matchColumns(v.Columns, m.Columns); err != nil {
		return 0, fmt.Errorf("feature vector schema mismatch: %w", err)
	}

	out := m.Intercept
	for i, w := range m.Weights {
		out += w * v.Values[i]
	}
	return out, nil
}

func matchColumns(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("%d columns, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("column %d is %q, want %q", i, got[i], want[i])
		}
	}
	return nil
}

// Service lazily loads the artifact on first use so a missing model file
// fails the predict action, not the already-rendered charts.
type Service struct {
	path   string
	logger *utils.Logger

	once  sync.Once
	model *LinearModel
	err   error
}

// NewService creates a predictor backed by the artifact at path.
func NewService(path string, logger *utils.Logger) *Service {
	return &Service{path: path, logger: logger}
}

// Predict loads the model once, then scores the vector.
func (s *Service) Predict(v models.FeatureVector) (float64, error) {
	s.once.Do(func() {
		s.model, s.err = LoadModel(s.path)
		if s.err == nil {
			s.logger.Info("Loaded revenue model from %s (%d features)", s.path, len(s.model.Columns))
		}
	})
	if s.err != nil {
		return 0, s.err
	}
	return s.model.Predict(v)
}
