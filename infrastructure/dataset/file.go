// Package dataset carrega conjuntos de dados de vendas de fontes externas
package dataset

import (
	"context"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrSourceNotConfigured indica que nenhum arquivo de dados foi configurado
var ErrSourceNotConfigured = errors.New("dataset source not configured")

// LoadError indica que a fonte configurada não pôde ser lida ou interpretada
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return "dataset: loading " + e.Path + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

//go:generate mockgen -source=file.go -destination=mocks/mock_file.go -package=mocks

// Source define a interface para obter o conjunto de dados de vendas
type Source interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

type fileSource struct {
	path string
}

// NewFileSource cria uma fonte que lê o conjunto de dados de um arquivo JSON
func NewFileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Load(ctx context.Context) (*domain.Dataset, error) {
	if s.path == "" {
		return nil, ErrSourceNotConfigured
	}

	if err := ctx.Err(); err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: errors.Wrap(err, "reading file")}
	}

	data, err := Decode(content)
	if err != nil {
		return nil, &LoadError{Path: s.path, Err: err}
	}

	return data, nil
}

// Decode interpreta o conteúdo JSON de um conjunto de dados de vendas
func Decode(content []byte) (*domain.Dataset, error) {
	data := &domain.Dataset{}
	if err := json.Unmarshal(content, data); err != nil {
		return nil, errors.Wrap(err, "dataset: decoding sales dataset")
	}

	return data, nil
}
