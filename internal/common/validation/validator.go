// internal/common/validation/validator.go
package validation

import (
	"fmt"
	"strings"

	"support-match-workers/internal/common/errors"
	"support-match-workers/pkg/registry"

	"github.com/xeipuuv/gojsonschema"
)

// Validator checks job variables against the input schemas declared in the
// activity registry. Schemas are compiled once at construction.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

func NewValidator(reg *registry.ActivityRegistry) (*Validator, error) {
	v := &Validator{schemas: make(map[string]*gojsonschema.Schema)}
	for _, activity := range reg.Activities {
		if len(activity.InputSchema) == 0 {
			continue
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(activity.InputSchema))
		if err != nil {
			return nil, fmt.Errorf("compile input schema for %s: %w", activity.TaskType, err)
		}
		v.schemas[activity.TaskType] = schema
	}
	return v, nil
}

// Has reports whether taskType has a compiled input schema.
func (v *Validator) Has(taskType string) bool {
	_, ok := v.schemas[taskType]
	return ok
}

// ValidateVariables validates a job's raw variables document. Task types
// without a schema pass unchecked.
func (v *Validator) ValidateVariables(taskType, variables string) error {
	schema, ok := v.schemas[taskType]
	if !ok {
		return nil
	}

	if strings.TrimSpace(variables) == "" {
		variables = "{}"
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(variables))
	if err != nil {
		return errors.NewValidationError(fmt.Sprintf("invalid variables document: %v", err))
	}

	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			msgs[i] = desc.String()
		}
		return errors.NewValidationError(strings.Join(msgs, "; "))
	}

	return nil
}
