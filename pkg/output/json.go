package output

import (
	"encoding/json"

	"github.com/sonemaro/jsdocgen/pkg/logger"
	"github.com/sonemaro/jsdocgen/pkg/task"
)

func (f *formatter) formatJSON(tc *task.Context) (string, error) {
	f.log.Debug("Formatting JSON plan")

	bytes, err := json.MarshalIndent(f.buildPlan(tc), "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}
