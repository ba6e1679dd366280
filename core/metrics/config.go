package metrics

import "github.com/chrissuu/elastisched/core/factory"

// Config defines which metrics sinks to construct.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
