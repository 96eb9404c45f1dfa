package predictor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"hotel-revenue-dashboard/models"
	"hotel-revenue-dashboard/schema"
	"hotel-revenue-dashboard/utils"
)

func writeArtifact(t *testing.T, m LinearModel) string {
	t.Helper()
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal artifact: %v", err)
	}
	path := filepath.Join(t.TempDir(), "revenue_model.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func testArtifact() LinearModel {
	weights := make([]float64, len(schema.FeatureColumns))
	return LinearModel{
		SchemaVersion: schema.Version,
		Columns:       append([]string(nil), schema.FeatureColumns...),
		Weights:       weights,
		Intercept:     500,
	}
}

func testVector() models.FeatureVector {
	return models.FeatureVector{
		Columns: append([]string(nil), schema.FeatureColumns...),
		Values:  make([]float64, len(schema.FeatureColumns)),
	}
}

func TestLoadModelAndPredict(t *testing.T) {
	artifact := testArtifact()
	// Weight final_price by 2 so the score depends on the input.
	for i, col := range artifact.Columns {
		if col == "final_price" {
			artifact.Weights[i] = 2
		}
	}

	m, err := LoadModel(writeArtifact(t, artifact))
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}

	v := testVector()
	for i, col := range v.Columns {
		if col == "final_price" {
			v.Values[i] = 150
		}
	}

	got, err := m.Predict(v)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if want := 500 + 2*150.0; got != want {
		t.Errorf("Predict = %v, want %v", got, want)
	}

	// Deterministic for a fixed vector.
	again, _ := m.Predict(v)
	if again != got {
		t.Errorf("Predict not deterministic: %v then %v", got, again)
	}
}

func TestLoadModelRejectsBadArtifacts(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadModel(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("missing artifact should fail")
		}
	})

	t.Run("corrupt json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadModel(path); err == nil {
			t.Error("corrupt artifact should fail")
		}
	})

	t.Run("wrong schema version", func(t *testing.T) {
		artifact := testArtifact()
		artifact.SchemaVersion = schema.Version + 1
		if _, err := LoadModel(writeArtifact(t, artifact)); err == nil {
			t.Error("version mismatch should fail")
		}
	})

	t.Run("reordered columns", func(t *testing.T) {
		artifact := testArtifact()
		artifact.Columns[0], artifact.Columns[1] = artifact.Columns[1], artifact.Columns[0]
		if _, err := LoadModel(writeArtifact(t, artifact)); err == nil {
			t.Error("reordered columns should fail")
		}
	})

	t.Run("weight count mismatch", func(t *testing.T) {
		artifact := testArtifact()
		artifact.Weights = artifact.Weights[:5]
		if _, err := LoadModel(writeArtifact(t, artifact)); err == nil {
			t.Error("weight/column count mismatch should fail")
		}
	})
}

func TestPredictRejectsVectorSchemaMismatch(t *testing.T) {
	m, err := LoadModel(writeArtifact(t, testArtifact()))
	if err != nil {
		t.Fatalf("LoadModel failed: %v", err)
	}

	v := testVector()
	v.Columns[3], v.Columns[4] = v.Columns[4], v.Columns[3]
	if _, err := m.Predict(v); err == nil {
		t.Error("reordered vector should be rejected")
	}

	short := models.FeatureVector{Columns: v.Columns[:5], Values: v.Values[:5]}
	if _, err := m.Predict(short); err == nil {
		t.Error("truncated vector should be rejected")
	}
}

func TestServiceLazyLoad(t *testing.T) {
	logger := utils.NewLogger(false)

	svc := NewService(writeArtifact(t, testArtifact()), logger)
	got, err := svc.Predict(testVector())
	if err != nil {
		t.Fatalf("Service.Predict failed: %v", err)
	}
	if got != 500 {
		t.Errorf("Service.Predict = %v, want intercept 500", got)
	}

	broken := NewService(filepath.Join(t.TempDir(), "missing.json"), logger)
	if _, err := broken.Predict(testVector()); err == nil {
		t.Error("missing artifact should surface an error")
	}
	// The load error sticks on subsequent calls.
	if _, err := broken.Predict(testVector()); err == nil {
		t.Error("load error should persist across calls")
	}
}
