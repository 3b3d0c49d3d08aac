package roman

import (
	"bytes"
	"errors"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Source yields a single decoded document for ParseFrom. JSON numbers decode
// as json.Number so integral values stay exact.
type Source interface {
	Decode() (any, error)
	Name() string
}

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return jsonSource{r: bytes.NewReader(b)} }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source { return jsonSource{r: r} }

// YAMLBytes wraps a byte slice as a YAML Source. Only the first document
// is read.
func YAMLBytes(b []byte) Source { return yamlSource{r: bytes.NewReader(b)} }

// YAMLReader wraps an io.Reader as a YAML Source.
func YAMLReader(r io.Reader) Source { return yamlSource{r: r} }

type jsonSource struct{ r io.Reader }

func (s jsonSource) Name() string { return "github.com/goccy/go-json" }

func (s jsonSource) Decode() (any, error) {
	dec := json.NewDecoder(s.r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("unexpected data after top-level value")
		}
		return nil, err
	}
	return v, nil
}

type yamlSource struct{ r io.Reader }

func (s yamlSource) Name() string { return "gopkg.in/yaml.v3" }

func (s yamlSource) Decode() (any, error) {
	var v any
	if err := yaml.NewDecoder(s.r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
