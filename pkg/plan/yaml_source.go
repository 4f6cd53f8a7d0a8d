package plan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlFile is the top-level structure of a catalog file:
//
//	plans:
//	  - id: free
//	    name: Free
//	    is_free: true
//	  - id: pro
//	    name: Pro
//	    prices:
//	      - id: pri_pro_monthly
//	        interval: month
//	        amount: {amount: 990, currency: USD}
type yamlFile struct {
	Plans []PricePlan `yaml:"plans"`
}

type fileSource struct {
	fsys fs.FS
	path string
}

// NewFileSource returns a Source that reads the catalog from a YAML file
// on the OS filesystem.
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

// NewFSSource returns a Source that reads the catalog from a YAML file in
// the given filesystem. Useful with go:embed to ship the catalog inside
// the binary.
func NewFSSource(fsys fs.FS, path string) Source {
	return &fileSource{fsys: fsys, path: path}
}

func (s *fileSource) Load(_ context.Context) ([]PricePlan, error) {
	var data []byte
	var err error
	if s.fsys != nil {
		data, err = fs.ReadFile(s.fsys, s.path)
	} else {
		data, err = os.ReadFile(s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", s.path, err)
	}

	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", s.path, err)
	}
	if len(file.Plans) == 0 {
		return nil, errors.Join(ErrNoPlans, fmt.Errorf("catalog file %s", s.path))
	}

	return file.Plans, nil
}
