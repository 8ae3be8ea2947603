package config

import "testing"

func TestLoadConfigFromBytesDefaults(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`seed: 7`))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.CDE.QuadtreeDepth != DefaultConfig().CDE.QuadtreeDepth {
		t.Fatalf("expected default quadtree depth to survive partial YAML")
	}
}

func TestLoadConfigFromBytesAutoSeed(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`{}`))
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}
	if cfg.Seed == 0 {
		t.Fatalf("expected auto-generated non-zero seed")
	}
}

func TestValidateRejectsOutOfRangeLSFrac(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LBF.LSFrac = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for lsFrac > 1.0")
	}
}

func TestHashDeterministic(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	a.Seed, b.Seed = 42, 42

	ha, hb := a.Hash(), b.Hash()
	if len(ha) != len(hb) {
		t.Fatalf("hash length mismatch")
	}
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("Hash() not deterministic for identical configs")
		}
	}
}

func TestHashDiffersWithSeed(t *testing.T) {
	a := DefaultConfig()
	a.Seed = 1
	b := DefaultConfig()
	b.Seed = 2

	ha, hb := a.Hash(), b.Hash()
	same := true
	for i := range ha {
		if ha[i] != hb[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected different hashes for different seeds")
	}
}

func TestToYAMLRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99

	data, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML: %v", err)
	}
	restored, err := LoadConfigFromBytes(data)
	if err != nil {
		t.Fatalf("LoadConfigFromBytes round trip: %v", err)
	}
	if restored.Seed != cfg.Seed {
		t.Fatalf("Seed = %d, want %d", restored.Seed, cfg.Seed)
	}
	if restored.LBF.NSamples != cfg.LBF.NSamples {
		t.Fatalf("NSamples = %d, want %d", restored.LBF.NSamples, cfg.LBF.NSamples)
	}
}
