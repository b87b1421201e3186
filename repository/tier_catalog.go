package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"everest-finance/domain"
)

//go:embed tiers.yaml
var defaultTiers []byte

// TierCatalog is the fixed set of service tiers, in display order.
type TierCatalog struct {
	tiers []domain.ServiceTier
	byID  map[string]domain.ServiceTier
}

type tierFile struct {
	Tiers []domain.ServiceTier `yaml:"tiers"`
}

// DefaultTierCatalog returns the embedded catalog.
func DefaultTierCatalog() *TierCatalog {
	c, err := ParseTierCatalog(defaultTiers)
	if err != nil {
		panic(fmt.Sprintf("embedded tiers.yaml: %v", err))
	}
	return c
}

// LoadTierCatalog reads a catalog from a YAML file.
func LoadTierCatalog(path string) (*TierCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tier catalog: %w", err)
	}
	return ParseTierCatalog(data)
}

func ParseTierCatalog(data []byte) (*TierCatalog, error) {
	var f tierFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse tier catalog: %w", err)
	}
	if len(f.Tiers) == 0 {
		return nil, errors.New("tier catalog is empty")
	}

	c := &TierCatalog{byID: make(map[string]domain.ServiceTier, len(f.Tiers))}
	for _, t := range f.Tiers {
		if t.ID == "" {
			return nil, errors.New("tier without id")
		}
		if _, dup := c.byID[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tier %q", t.ID)
		}
		if t.FeeMin < 0 || t.FeeMax < t.FeeMin {
			return nil, fmt.Errorf("tier %q: invalid fee range [%g, %g]", t.ID, t.FeeMin, t.FeeMax)
		}
		c.tiers = append(c.tiers, t)
		c.byID[t.ID] = t
	}
	return c, nil
}

func (c *TierCatalog) Lookup(id string) (domain.ServiceTier, bool) {
	t, ok := c.byID[id]
	return t, ok
}

func (c *TierCatalog) All() []domain.ServiceTier {
	return append([]domain.ServiceTier(nil), c.tiers...)
}
