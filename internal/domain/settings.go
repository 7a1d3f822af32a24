package domain

// EngineSettings configures how batches of date pairs are processed
type EngineSettings struct {
	Basis     Basis  `json:"basis" yaml:"basis" mapstructure:"basis"`
	Separator string `json:"separator" yaml:"separator" mapstructure:"separator"`
	Workers   int    `json:"workers" yaml:"workers" mapstructure:"workers"`
}
