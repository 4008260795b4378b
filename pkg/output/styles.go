package output

import (
	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/output/styles"
)

// LoadStylesFromFile replaces the built-in styles with the ones in a YAML
// file using the styles.yaml layout. An empty path keeps the built-in
// styles.
func LoadStylesFromFile(path string) error {
	if path == "" {
		return nil
	}
	if err := styles.LoadStyles(path); err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "cannot load styles").
			WithDetail(errors.DetailPath, path)
	}
	return nil
}
