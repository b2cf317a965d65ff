// Package schemas validates generated plan structures against their
// JSON Schemas before persistence.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed roadmap_plan.schema.json
var roadmapPlanSchema []byte

// ValidateRoadmapPlan checks a normalized week list against the plan
// schema. It returns the list of violation descriptions (empty when the
// plan conforms) and an error only for schema/marshaling failures.
func ValidateRoadmapPlan(plan any) ([]string, error) {
	doc, err := json.Marshal(plan)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan for validation: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(roadmapPlanSchema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		violations = append(violations, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	return violations, nil
}
