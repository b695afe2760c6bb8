// Package output serializes grids and their snapshots.
package output

import (
	"encoding/json"

	"github.com/ukaji3/tabgrid-go/pkg/tabgrid/models"
	"gopkg.in/yaml.v3"
)

// ToJSON serializes a workbook snapshot to JSON.
func ToJSON(wb *models.WorkbookData, pretty bool) ([]byte, error) {
	return marshalJSON(wb, pretty)
}

// SheetToJSON serializes a single grid snapshot to JSON.
func SheetToJSON(sheet *models.GridData, pretty bool) ([]byte, error) {
	return marshalJSON(sheet, pretty)
}

// ToYAML serializes a workbook snapshot to YAML.
func ToYAML(wb *models.WorkbookData) ([]byte, error) {
	return yaml.Marshal(wb)
}

// SheetToYAML serializes a single grid snapshot to YAML.
func SheetToYAML(sheet *models.GridData) ([]byte, error) {
	return yaml.Marshal(sheet)
}

func marshalJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
