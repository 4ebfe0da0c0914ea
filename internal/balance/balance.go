package balance

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wolfgangpeters02/defend-and-descend-sub008/internal/commons/logger_config"
)

// Provider is the tuning source for every numeric constant in the
// simulation. Values are addressed by dotted path keys matching the
// exported balance sheet ("boss.mainframe.pylon_count"). Lookups that miss
// both the override file and the built-in defaults fall back to the
// caller-documented default, never an error.
type Provider struct {
	mu        sync.RWMutex
	values    map[string]float32
	overrides map[string]float32
}

func NewProvider() *Provider {
	return &Provider{
		values:    defaultValues(),
		overrides: map[string]float32{},
	}
}

// F returns the value for key, or def when the key is unknown everywhere.
func (p *Provider) F(key string, def float32) float32 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.overrides[key]; ok {
		return v
	}
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// I is F truncated to int, floored at zero.
func (p *Provider) I(key string, def int) int {
	v := int(p.F(key, float32(def)))
	if v < 0 {
		return 0
	}
	return v
}

// Set installs a single override. Primarily for tests and live tuning.
func (p *Provider) Set(key string, v float32) {
	p.mu.Lock()
	p.overrides[key] = v
	p.mu.Unlock()
}

// LoadFile replaces the override set with the contents of a YAML balance
// sheet. Nested mappings flatten to dotted keys; non-numeric leaves are
// skipped with a warning rather than failing the load.
func (p *Provider) LoadFile(path string) error {
	blob, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read balance file: %w", err)
	}

	var root map[string]any
	if err := yaml.Unmarshal(blob, &root); err != nil {
		return fmt.Errorf("decode balance file: %w", err)
	}

	flat := map[string]float32{}
	flatten("", root, flat)

	p.mu.Lock()
	p.overrides = flat
	p.mu.Unlock()

	logger_config.Infof("balance: loaded %d overrides from %s", len(flat), path)
	return nil
}

func flatten(prefix string, node map[string]any, out map[string]float32) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case float64:
			out[key] = float32(val)
		case int:
			out[key] = float32(val)
		case bool:
			if val {
				out[key] = 1
			} else {
				out[key] = 0
			}
		default:
			logger_config.Warnf("balance: skipping non-numeric key %q (%T)", key, v)
		}
	}
}
