package config

// CheckConfig controls how violations are reported
type CheckConfig struct {
	MaxReported int  `yaml:"maxReported" validate:"gte=0"`
	Entities    bool `yaml:"entities"` // also run transit IsValid after record validation
	MinVersion  int  `yaml:"minVersion" validate:"gte=0,lte=65535"`
}

// Source names a graph dump and/or a serialized transit section
type Source struct {
	Name        string `yaml:"name" validate:"required"`
	GraphPath   string `yaml:"graphPath" validate:"required_without=SectionPath"`
	SectionPath string `yaml:"sectionPath" validate:"required_without=GraphPath"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Check       CheckConfig `yaml:"check"`
	GraphPath   string      `yaml:"graphPath"`
	SectionPath string      `yaml:"sectionPath"`
	Sources     []Source    `yaml:"sources"`
}
