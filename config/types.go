package config

// InputConfig locates the timetable table to convert
type InputConfig struct {
	// Path to the semicolon-separated timetable CSV
	Path string `yaml:"path"`
}

// OutputConfig controls where the Pajek files are written
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// GeneratorConfig controls the random timetable generator
type GeneratorConfig struct {
	Stations        int       `yaml:"stations" validate:"gte=0"`
	Trains          int       `yaml:"trains" validate:"gte=0"`
	DepartureWindow []string  `yaml:"departureWindow" validate:"omitempty,len=2"`
	StopProbability float64   `yaml:"stopProbability" validate:"gte=0,lte=1"`
	MinStopMinutes  int       `yaml:"minStopMinutes" validate:"gte=0"`
	MaxStopMinutes  int       `yaml:"maxStopMinutes" validate:"gte=0"`
	LatRange        []float64 `yaml:"latRange" validate:"omitempty,len=2"`
	LonRange        []float64 `yaml:"lonRange" validate:"omitempty,len=2"`
	Seed            int64     `yaml:"seed"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input     InputConfig     `yaml:"input"`
	Output    OutputConfig    `yaml:"output"`
	Spaces    []string        `yaml:"spaces" validate:"dive,oneof=stations stops changes"`
	Modes     []string        `yaml:"modes" validate:"dive,oneof=dsn dtn"`
	Generator GeneratorConfig `yaml:"generator"`
}
