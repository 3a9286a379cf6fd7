package detection

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/zricethezav/gitleaks/v8/config"
	"github.com/zricethezav/gitleaks/v8/detect"
)

// Engine scans outgoing tool-call arguments for leaked secrets before they
// reach the wire.
type Engine struct {
	detector *detect.Detector
}

type Result struct {
	RuleID      string
	Description string
}

// NewEngine creates a detection engine backed by gitleaks' builtin ruleset.
func NewEngine() (*Engine, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create detector: %w", err)
	}
	return &Engine{detector: detector}, nil
}

// NewEngineFromConfig creates a detection engine from a custom gitleaks TOML
// ruleset at configPath.
func NewEngineFromConfig(configPath string) (*Engine, error) {
	// Setup viper to read the config file
	v := viper.New()
	v.SetConfigType("toml")
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse into gitleaks config format
	var vc config.ViperConfig
	if err := v.Unmarshal(&vc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Translate to GitLeaks config
	cfg, err := vc.Translate()
	if err != nil {
		return nil, fmt.Errorf("failed to translate config: %w", err)
	}

	return &Engine{detector: detect.NewDetector(cfg)}, nil
}

// Detect scans every string-valued argument and reports findings. Non-string
// values are skipped.
func (e *Engine) Detect(arguments map[string]any) []Result {
	var results []Result
	for _, arg := range arguments {
		argStr, ok := arg.(string)
		if !ok {
			continue
		}
		for _, finding := range e.detector.DetectString(argStr) {
			results = append(results, Result{
				RuleID:      finding.RuleID,
				Description: finding.Description,
			})
		}
	}
	return results
}
