package packages

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Temutjin2k/fitness-tracker/internal/domain/models"
)

var (
	ErrNoFilePath = errors.New("no packages file path provided")
	ErrNoPackages = errors.New("packages file has no packages")
)

type file struct {
	Packages []models.Package `yaml:"packages"`
}

// Load reads sensor packages from a YAML file:
//
//	packages:
//	  - type: RUN
//	    data: [15000, 1, 75]
func Load(path string) ([]models.Package, error) {
	if path == "" {
		return nil, ErrNoFilePath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read packages file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("could not parse packages file: %w", err)
	}

	if len(f.Packages) == 0 {
		return nil, ErrNoPackages
	}

	return f.Packages, nil
}

// Default returns the readings the tracker was shipped with.
func Default() []models.Package {
	return []models.Package{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
