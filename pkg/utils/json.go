package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

func Decode[T any](reader io.Reader) (T, error) {
	decoder := json.NewDecoder(reader)
	var t T
	return t, decoder.Decode(&t)
}

func EncodeIndent[T any](w io.Writer, t T, indent string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", indent)
	return encoder.Encode(t)
}

// WriteFile encodes t as indented JSON into name, replacing any existing file.
func WriteFile[T any](name string, t T) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", name, err)
	}
	if err := EncodeIndent(f, t, "  "); err != nil {
		f.Close()
		return fmt.Errorf("error encoding %s: %w", name, err)
	}
	return f.Close()
}
