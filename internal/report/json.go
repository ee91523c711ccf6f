package report

import (
	"encoding/json"

	"github.com/wassima-azzouzi/data-agent/internal/analyzer"
)

// JSON renders the analysis result as indented JSON.
func JSON(res *analyzer.Result) ([]byte, error) {
	return json.MarshalIndent(res, "", "  ")
}
