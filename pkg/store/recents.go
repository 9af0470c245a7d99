package store

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/chipfield/pkg/option"
)

const recentsBucket = "recents"

// Recents remembers the last committed selection per prompt id so a picker
// can pre-select it on the next run.
type Recents interface {
	Get(promptID string) ([]option.Option, error)
	Put(promptID string, sel []option.Option) error
	Forget(promptID string) error
	Prompts(ctx context.Context) []string
}

// LoadRecents creates a Recents backed by diskv using the provided config.
// A nil config falls back to LoadConfig.
func LoadRecents(cfg Config) (Recents, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &recents{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: promptToPathTransform,
		InverseTransform:  pathToPromptTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	})}, nil
}

type recents struct {
	d *diskv.Diskv
}

func (r *recents) Get(promptID string) ([]option.Option, error) {
	if !r.d.Has(promptID) {
		return nil, nil
	}
	data, err := r.d.Read(promptID)
	if err != nil {
		return nil, fmt.Errorf("store: read recents %q: %w", promptID, err)
	}
	var sel []option.Option
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("store: decode recents %q: %w", promptID, err)
	}
	return sel, nil
}

func (r *recents) Put(promptID string, sel []option.Option) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("store: encode recents %q: %w", promptID, err)
	}
	if err := r.d.Write(promptID, data); err != nil {
		return fmt.Errorf("store: write recents %q: %w", promptID, err)
	}
	return nil
}

func (r *recents) Forget(promptID string) error {
	if !r.d.Has(promptID) {
		return nil
	}
	return r.d.Erase(promptID)
}

func (r *recents) Prompts(ctx context.Context) []string {
	var prompts []string
	for key := range r.d.Keys(ctx.Done()) {
		prompts = append(prompts, key)
	}
	return prompts
}

// Prompt ids are free-form, so they are base64 encoded into the file name
// under a fixed bucket directory.
func promptToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{recentsBucket},
		FileName: base64.URLEncoding.EncodeToString([]byte(key)),
	}
}

func pathToPromptTransform(pathKey *diskv.PathKey) string {
	decoded, err := base64.URLEncoding.DecodeString(pathKey.FileName)
	if err != nil {
		return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
	}
	return string(decoded)
}
