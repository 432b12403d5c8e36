// Package level loads board layouts and spawns them into a world
package level

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/engine"
	"github.com/lixenwraith/wrapbox/parameter"
)

//go:embed schema.json
var schemaSource string

//go:embed default.yaml
var defaultSource []byte

const schemaURL = "wrapbox://level.schema.json"

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Level is a board layout as declared in a level file
type Level struct {
	Name     string       `yaml:"name"`
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	Entities []EntitySpec `yaml:"entities"`
}

// EntitySpec declares one entity; Facing is required for funnels only
type EntitySpec struct {
	Kind   string `yaml:"kind"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Facing string `yaml:"facing,omitempty"`
}

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString(schemaURL, schemaSource)
	})
	return schema, schemaErr
}

// Validate checks a decoded document against the level schema
// doc must hold JSON-shaped values (maps, slices, float64, string, bool)
func Validate(doc any) error {
	s, err := compiledSchema()
	if err != nil {
		return errors.Wrap(err, "compile level schema")
	}
	if err := s.Validate(doc); err != nil {
		return errors.Wrap(err, "level schema")
	}
	return nil
}

// Parse decodes and validates a YAML level
func Parse(raw []byte) (*Level, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decode level yaml")
	}

	// YAML scalars decode to Go ints; the validator expects JSON-shaped numbers
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "normalize level document")
	}
	var normalized any
	if err := json.Unmarshal(js, &normalized); err != nil {
		return nil, errors.Wrap(err, "normalize level document")
	}
	if err := Validate(normalized); err != nil {
		return nil, err
	}

	var lvl Level
	if err := yaml.Unmarshal(raw, &lvl); err != nil {
		return nil, errors.Wrap(err, "decode level")
	}
	if err := lvl.check(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Load reads and parses a level file
func Load(path string) (*Level, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read level %s", path)
	}
	lvl, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", path)
	}
	return lvl, nil
}

// Default returns the built-in level
func Default() *Level {
	lvl, err := Parse(defaultSource)
	if err != nil {
		panic(errors.Wrap(err, "embedded default level"))
	}
	return lvl
}

// check enforces what the schema cannot: coordinates inside the board
func (l *Level) check() error {
	if l.Width > parameter.MaxGridDimension || l.Height > parameter.MaxGridDimension {
		return errors.Errorf("board %dx%d exceeds %d", l.Width, l.Height, parameter.MaxGridDimension)
	}
	grid := l.Grid()
	for i, spec := range l.Entities {
		if !grid.Contains(core.Point{X: spec.X, Y: spec.Y}) {
			return errors.Errorf("entity %d (%s) at (%d,%d) is outside %dx%d board",
				i, spec.Kind, spec.X, spec.Y, l.Width, l.Height)
		}
		kind, err := component.ParseKind(spec.Kind)
		if err != nil {
			return errors.Wrapf(err, "entity %d", i)
		}
		if kind.Tags().Has(component.TagTrigger) {
			if _, err := component.ParseDir(spec.Facing); err != nil {
				return errors.Wrapf(err, "entity %d: %s needs a facing", i, spec.Kind)
			}
		}
	}
	return nil
}

// Grid returns the board dimensions
func (l *Level) Grid() core.Grid {
	return core.Grid{Width: l.Width, Height: l.Height}
}

// Spawn creates every declared entity in file order and returns them in the same order
// Co-located entities are spawned as given
func (l *Level) Spawn(w *engine.World) []core.Entity {
	entities := make([]core.Entity, 0, len(l.Entities))
	counts := make(map[component.Kind]int)
	for _, spec := range l.Entities {
		kind, _ := component.ParseKind(spec.Kind)
		facing, _ := component.ParseDir(spec.Facing)
		e := w.SpawnKind(kind, core.Point{X: spec.X, Y: spec.Y}, facing)
		entities = append(entities, e)
		counts[kind]++
	}

	w.Resource.Logger.Info("level spawned",
		zap.String("name", l.Name),
		zap.Int("width", l.Width),
		zap.Int("height", l.Height),
		zap.Int("entities", len(entities)),
		zap.String("kinds", kindSummary(counts)),
	)
	return entities
}

// NewWorld builds a world sized for the level and spawns it
func (l *Level) NewWorld(logger *zap.Logger) (*engine.World, []core.Entity) {
	w := engine.NewWorld(l.Grid())
	w.SetLogger(logger)
	return w, l.Spawn(w)
}

func kindSummary(counts map[component.Kind]int) string {
	var parts []string
	for k := component.Kind(0); k < component.KindCount; k++ {
		if n := counts[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", k, n))
		}
	}
	return strings.Join(parts, ",")
}
