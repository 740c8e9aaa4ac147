package yaml

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser for YAML data. JSON documents are valid YAML and
// are accepted as well.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals YAML data into target. Mappings decoded into an untyped target
// become map[string]any and sequences []any.
func (p *Parser) Parse(data []byte, target any) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	err := yaml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
