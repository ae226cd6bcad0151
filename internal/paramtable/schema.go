package paramtable

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaID identifies the published schema of the table format.
const SchemaID = "https://github.com/ruwak-dev/ruwak/abi/params.schema.json"

// Schema returns the JSON schema (Draft 2020-12) of the table file format,
// reflected from Table so it cannot drift from what Load accepts.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: false,
	}
	schema := reflector.Reflect(&Table{})
	schema.ID = jsonschema.ID(SchemaID)
	schema.Title = "Boundary conversion table"

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	return jsonBytes, nil
}
