package harness

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// ValidateFile checks a scenario file against the embedded CUE schema.
func ValidateFile(path string) error {
	sc, err := Load(path)
	if err != nil {
		return err
	}

	// The value/seed exclusivity rule is easier stated in Go than CUE.
	_, _, err = sc.Input()
	return err
}

// ValidateBytes checks raw scenario YAML against the embedded CUE schema.
// Structural errors (unknown ops, missing fields, out-of-range bases)
// are reported with CUE's field positions.
func ValidateBytes(data []byte) error {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Scenario"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup #Scenario: %w", err)
	}

	unified := def.Unify(ctx.Encode(raw))
	if err := unified.Validate(cue.Final(), cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema violation: %s", cueerrors.Details(err, nil))
	}
	return nil
}
