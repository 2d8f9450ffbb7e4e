package watchdog

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ByteSize is a byte-count threshold value. In YAML it accepts either a
// plain integer ("524288000") or a KB/MB/GB-suffixed string ("500MB").
type ByteSize int64

var byteSizeSuffixes = map[string]int64{
	"KB": 1024,
	"MB": 1024 * 1024,
	"GB": 1024 * 1024 * 1024,
}

// ParseByteSize parses a byte-count string with an optional KB/MB/GB suffix.
func ParseByteSize(s string) (ByteSize, error) {
	text := strings.TrimSpace(s)
	multiplier := int64(1)
	for suffix, m := range byteSizeSuffixes {
		if strings.HasSuffix(strings.ToUpper(text), suffix) {
			text = strings.TrimSpace(text[:len(text)-len(suffix)])
			multiplier = m
			break
		}
	}
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}
	return ByteSize(value * multiplier), nil
}

func (b ByteSize) String() string {
	return strconv.FormatInt(int64(b), 10)
}

func (b *ByteSize) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("byte size must be a scalar, got %v", value.Kind)
	}
	parsed, err := ParseByteSize(value.Value)
	if err != nil {
		return err
	}
	*b = parsed
	return nil
}
