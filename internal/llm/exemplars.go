package llm

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed exemplars.json
var exemplarData []byte

// Exemplar is one worked example shown to the model.
type Exemplar struct {
	Input  InputItem  `json:"input"`
	Fields ItemFields `json:"fields"`
}

type exemplarFile struct {
	Revision string     `json:"revision"`
	Examples []Exemplar `json:"examples"`
}

var exemplars exemplarFile

func init() {
	if err := json.Unmarshal(exemplarData, &exemplars); err != nil {
		panic(fmt.Sprintf("llm: bad exemplars.json: %v", err))
	}
}

// Exemplars returns the embedded few-shot examples.
func Exemplars() []Exemplar {
	return exemplars.Examples
}

// extractionLogicVersion bumps when the prompt-building or decoding logic
// changes in a way that alters outputs. The exemplar revision is appended so
// data-only prompt changes are auditable without a code diff.
const extractionLogicVersion = "2"

// ParserVersion identifies the extraction logic plus exemplar revision that
// produced a mapping. Stored on every mapping; old mappings are never
// retroactively invalidated by a bump.
func ParserVersion() string {
	return extractionLogicVersion + "+" + exemplars.Revision
}
