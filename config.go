package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// loadMatrix reads a YAML matrix description from r.
//
// Keys that are left out keep their DefaultMatrix value, so an empty
// document yields the default matrix. Unknown keys are an error. The result
// is not validated; generate does that.
func loadMatrix(r io.Reader) (Matrix, error) {
	m := DefaultMatrix.clone()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		return Matrix{}, fmt.Errorf("error parsing matrix: %w", err)
	}
	return m, nil
}

// loadMatrixFile is loadMatrix for a file on disk.
func loadMatrixFile(path string) (Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return Matrix{}, fmt.Errorf("error opening matrix file: %w", err)
	}
	defer f.Close()

	m, err := loadMatrix(f)
	if err != nil {
		return Matrix{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
