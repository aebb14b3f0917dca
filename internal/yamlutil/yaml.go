// Package yamlutil wraps YAML parsing to isolate the external dependency.
// This allows swapping the underlying YAML library without modifying callers.
// Frontmatter splitting goes through the same decoder so that config files,
// theme files and document metadata share one YAML dialect.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
	"github.com/goccy/go-yaml"
)

// MaxInputSize limits YAML input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData          = errors.New("yamlutil: nil or empty data")
	ErrNilDestination   = errors.New("yamlutil: nil destination pointer")
	ErrInputTooLarge    = errors.New("yamlutil: input exceeds maximum size")
	ErrNoFrontmatter    = errors.New("yamlutil: no frontmatter block found")
	ErrEmptyFrontmatter = errors.New("yamlutil: frontmatter block is empty")
)

// frontmatterFormats only recognizes "---" delimited YAML blocks.
var frontmatterFormats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", unmarshalFrontmatter),
}

func validateInput(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	return nil
}

func Unmarshal(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// UnmarshalStrict rejects unknown fields in the input.
func UnmarshalStrict(data []byte, v any) error {
	if err := validateInput(data, v); err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}

// ParseFrontmatter decodes the leading "---" block of a document into v and
// returns the remaining body. Unknown keys are ignored.
func ParseFrontmatter(data []byte, v any) ([]byte, error) {
	if err := validateInput(data, v); err != nil {
		return nil, err
	}
	body, err := frontmatter.MustParse(bytes.NewReader(data), v, frontmatterFormats...)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, ErrNoFrontmatter
		}
		return nil, err
	}
	return body, nil
}

// unmarshalFrontmatter adapts Unmarshal to the frontmatter decoder.
// An empty block is reported distinctly from a malformed one.
func unmarshalFrontmatter(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyFrontmatter
	}
	return Unmarshal(data, v)
}
