// Package jobsfile loads a job set from a YAML or JSON file into
// []model.Job, grounded on the teacher's core/scheduler.LoadConfig
// extension-sniffing pattern.
package jobsfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chrissuu/elastisched/core/model"
)

// jobSpec is the on-disk shape of a job entry. Fields mirror model.Job but
// use plain, serializable types (integer durations in seconds, dependency
// names instead of a set, a flat tag list) so the file stays human-editable.
type jobSpec struct {
	ID           string     `json:"id" yaml:"id"`
	Duration     model.Time `json:"duration" yaml:"duration"`
	WindowStart  model.Time `json:"windowStart" yaml:"windowStart"`
	WindowEnd    model.Time `json:"windowEnd" yaml:"windowEnd"`
	Policy       policySpec `json:"policy" yaml:"policy"`
	Dependencies []string   `json:"dependencies" yaml:"dependencies"`
	Tags         []string   `json:"tags" yaml:"tags"`
}

type policySpec struct {
	Splittable         bool       `json:"splittable" yaml:"splittable"`
	Overlappable       bool       `json:"overlappable" yaml:"overlappable"`
	Invisible          bool       `json:"invisible" yaml:"invisible"`
	RoundToGranularity bool       `json:"roundToGranularity" yaml:"roundToGranularity"`
	MaxSplits          int        `json:"maxSplits" yaml:"maxSplits"`
	MinSplitDuration   model.Time `json:"minSplitDuration" yaml:"minSplitDuration"`
}

func (p policySpec) toPolicy() model.Policy {
	return model.Policy{
		Splittable:         p.Splittable,
		Overlappable:       p.Overlappable,
		Invisible:          p.Invisible,
		RoundToGranularity: p.RoundToGranularity,
		MaxSplits:          p.MaxSplits,
		MinSplitDuration:   p.MinSplitDuration,
	}
}

// Load reads jobs from a YAML or JSON file, selecting the decoder by file
// extension, and converts each entry into a model.Job.
func Load(path string) ([]model.Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("jobsfile: read %s: %w", path, err)
	}
	var specs []jobSpec
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &specs)
	case ".json":
		err = json.Unmarshal(b, &specs)
	default:
		return nil, fmt.Errorf("jobsfile: unsupported format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("jobsfile: decode %s: %w", path, err)
	}

	jobs := make([]model.Job, 0, len(specs))
	for _, spec := range specs {
		window, err := model.NewInterval(spec.WindowStart, spec.WindowEnd)
		if err != nil {
			return nil, fmt.Errorf("jobsfile: job %s: %w", spec.ID, err)
		}
		job, err := model.NewJob(spec.ID, spec.Duration, window, spec.Policy.toPolicy())
		if err != nil {
			return nil, fmt.Errorf("jobsfile: job %s: %w", spec.ID, err)
		}
		for _, dep := range spec.Dependencies {
			job.AddDependency(dep)
		}
		for _, tag := range spec.Tags {
			job.AddTag(model.Tag{Name: tag})
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
