package extract

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

type textStrategy struct{}

func (textStrategy) Method() string { return "text" }

// Extract decodes data as UTF-8. A leading BOM is dropped and invalid
// sequences become U+FFFD.
func (textStrategy) Extract(data []byte) (string, int, error) {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return "", 0, fmt.Errorf("decode text: %w", err)
	}
	return string(out), 1, nil
}
