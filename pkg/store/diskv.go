package store

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tempo/pkg/journal"
)

// Persistence defines the persistence contract for sheets. Load failures
// degrade to an empty sheet; only save failures surface as errors.
type Persistence interface {
	LoadSheet(name string) *journal.Journal
	SaveSheet(name string, j *journal.Journal) error
	Sheets(ctx context.Context) []string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: no base path configured")
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

const sheetSuffix = ".sheet.json"

// flatTransform keeps every sheet document at the top of the base path.
func flatTransform(string) []string { return []string{} }

func toKey(name string) string {
	return name + sheetSuffix
}

func fromKey(key string) (string, bool) {
	if !strings.HasSuffix(key, sheetSuffix) {
		return "", false
	}
	return strings.TrimSuffix(key, sheetSuffix), true
}

// LoadSheet reads and reconciles the named sheet. A missing file, unreadable
// content, or a malformed document all yield a fresh empty sheet; persistence
// problems must never block logging time.
func (p *persistence) LoadSheet(name string) *journal.Journal {
	val, err := p.d.Read(toKey(name))
	if err != nil {
		return journal.New()
	}
	var doc Document
	if err := json.Unmarshal(val, &doc); err != nil {
		return journal.New()
	}
	return UnmarshalJournal(doc)
}

// SaveSheet writes the sheet's full document.
func (p *persistence) SaveSheet(name string, j *journal.Journal) error {
	data, err := json.Marshal(MarshalJournal(j))
	if err != nil {
		return err
	}
	return p.d.Write(toKey(name), data)
}

// Sheets lists stored sheet names, sorted.
func (p *persistence) Sheets(ctx context.Context) []string {
	names := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if name, ok := fromKey(key); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
