package snapshot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/revenue-attribution-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store persiste e recupera o snapshot pivotado de receita e o seu marcador
// de atualização. O snapshot de cada execução substitui integralmente o
// anterior.
type Store interface {
	Write(records []domain.SnapshotRecord, generatedAt time.Time) error
	ReadRecords() ([]domain.SnapshotRecord, error)
	ReadLastUpdated() (string, error)
}

// FileStore implementa Store sobre arquivos locais. A escrita é atômica:
// os dados vão para um arquivo temporário no mesmo diretório e só então são
// renomeados sobre o destino, de modo que um leitor nunca observa um
// resultado parcialmente escrito. O marcador de atualização só é gravado
// depois que a renomeação dos dados teve sucesso.
type FileStore struct {
	dataPath        string
	lastUpdatedPath string
}

func NewFileStore(dataPath, lastUpdatedPath string) *FileStore {
	return &FileStore{
		dataPath:        dataPath,
		lastUpdatedPath: lastUpdatedPath,
	}
}

func (s *FileStore) Write(records []domain.SnapshotRecord, generatedAt time.Time) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("erro ao serializar o snapshot: %w", err)
	}

	if err := writeAtomic(s.dataPath, data); err != nil {
		return fmt.Errorf("erro ao gravar o snapshot: %w", err)
	}

	timestamp := generatedAt.Format(time.RFC3339)
	if err := writeAtomic(s.lastUpdatedPath, []byte(timestamp)); err != nil {
		return fmt.Errorf("erro ao gravar o marcador de atualização: %w", err)
	}

	return nil
}

func (s *FileStore) ReadRecords() ([]domain.SnapshotRecord, error) {
	data, err := os.ReadFile(s.dataPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o snapshot: %w", err)
	}

	records := make([]domain.SnapshotRecord, 0)
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("erro ao decodificar o snapshot: %w", err)
	}

	return records, nil
}

func (s *FileStore) ReadLastUpdated() (string, error) {
	data, err := os.ReadFile(s.lastUpdatedPath)
	if err != nil {
		return "", fmt.Errorf("erro ao ler o marcador de atualização: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// writeAtomic grava em um arquivo temporário no mesmo diretório do destino e
// renomeia por cima. O temporário é removido em caso de falha.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return nil
}
