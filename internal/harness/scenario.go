package harness

import (
	"fmt"
	"math/big"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bigcast/coerce"
	"github.com/roach88/bigcast/seed"
)

// Scenario defines a conformance scenario for the coercion engine.
// Exactly one of Value or Seed supplies the input.
type Scenario struct {
	// Name uniquely identifies this scenario. Also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description,omitempty"`

	// Value is a big integer literal in base-0 syntax: decimal or
	// 0x/0b/0o prefixed, optional sign, underscores allowed.
	Value string `yaml:"value,omitempty"`

	// Seed is text run through the seed encoder instead of Value.
	// A pointer so the empty seed text is expressible.
	Seed *string `yaml:"seed,omitempty"`

	// Checks are evaluated against the input in order.
	Checks []Check `yaml:"checks"`
}

// Check names one coercion view and its expected rendering.
type Check struct {
	// Op is a view name from the op registry (e.g. "uint8", "hex").
	Op string `yaml:"op"`

	// Base applies to the "text" op only; defaults to 10.
	Base int `yaml:"base,omitempty"`

	// Prefix applies to hex/binary/octal; defaults to true.
	Prefix *bool `yaml:"prefix,omitempty"`

	// Want is the expected rendering.
	Want string `yaml:"want"`
}

// Load reads a scenario file, validates it against the embedded schema,
// and decodes it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	if err := ValidateBytes(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("%s: decode scenario: %w", path, err)
	}
	return &sc, nil
}

// Input constructs the scenario's coercion value and describes it.
func (sc *Scenario) Input() (coerce.Int, InputSummary, error) {
	if sc.Seed != nil && sc.Value != "" {
		return coerce.Int{}, InputSummary{}, fmt.Errorf("scenario %q: value and seed are mutually exclusive", sc.Name)
	}

	if sc.Seed != nil {
		n, err := seed.Encode(*sc.Seed)
		if err != nil {
			return coerce.Int{}, InputSummary{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		return n, InputSummary{Kind: "seed", Text: *sc.Seed, Value: n.String()}, nil
	}

	if sc.Value == "" {
		return coerce.Int{}, InputSummary{}, fmt.Errorf("scenario %q: one of value or seed is required", sc.Name)
	}

	v, ok := new(big.Int).SetString(sc.Value, 0)
	if !ok {
		return coerce.Int{}, InputSummary{}, fmt.Errorf("scenario %q: invalid integer literal %q", sc.Name, sc.Value)
	}
	n, err := coerce.FromBig(v)
	if err != nil {
		return coerce.Int{}, InputSummary{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return n, InputSummary{Kind: "value", Text: sc.Value, Value: n.String()}, nil
}

// InputSummary describes how a scenario's input was built.
type InputSummary struct {
	// Kind is "value" or "seed".
	Kind string `json:"kind"`

	// Text is the literal or seed text as written in the scenario.
	Text string `json:"text"`

	// Value is the decimal rendering of the constructed integer.
	Value string `json:"value"`
}
