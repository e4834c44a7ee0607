package corpus

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

func readPDF(path string) (string, error) {
	fp, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf %s: %w", path, err)
	}
	defer fp.Close()

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from pdf %s: %w", path, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read text from pdf %s: %w", path, err)
	}
	return buf.String(), nil
}
