package output

import (
	"gopkg.in/yaml.v3"

	"github.com/sonemaro/jsdocgen/pkg/logger"
	"github.com/sonemaro/jsdocgen/pkg/task"
)

func (f *formatter) formatYAML(tc *task.Context) (string, error) {
	f.log.Debug("Formatting YAML plan")

	bytes, err := yaml.Marshal(f.buildPlan(tc))
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")
		return "", err
	}

	return string(bytes), nil
}
