package toml

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser implements config.Parser for TOML data.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse unmarshals TOML data into target. Tables decoded into an untyped target
// become map[string]any and arrays []any.
func (p *Parser) Parse(data []byte, target any) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	err := toml.Unmarshal(data, target)
	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return nil
}
