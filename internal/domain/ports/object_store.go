package ports

import (
	"context"
	"io"
)

// ObjectStore define a interface para armazenamento de objetos binários
// (imagens dos pontos). A URL retornada por Put é pública e resolvível
// pelo cliente.
type ObjectStore interface {
	// Put grava o objeto no caminho indicado e retorna a URL pública
	Put(ctx context.Context, path string, reader io.Reader, size int64, contentType string) (string, error)
	// Remove exclui o objeto endereçado pela URL retornada por Put
	Remove(ctx context.Context, url string) error
}
