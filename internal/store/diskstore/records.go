package diskstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sir_venger/upload_lite/internal/models"
)

// recordStore — минимальное KV-хранилище (id, field) -> текст.
// Существование ключа само по себе несёт смысл, поэтому отсутствие — не ошибка.
type recordStore interface {
	CreateEmpty(id, field string) error
	WriteText(id, field, value string) error
	ReadText(id, field string) (string, bool, error)
	Delete(id, field string) error
}

// fileRecords хранит каждую запись отдельным небольшим файлом `{id}.{field}`.
// Кеша нет: каждая операция — ровно один open/close, чтение всегда отражает диск.
type fileRecords struct {
	dir string
}

func (r fileRecords) path(id, field string) string {
	return filepath.Join(r.dir, id+"."+field)
}

// CreateEmpty создаёт (или обнуляет) запись нулевой длины.
func (r fileRecords) CreateEmpty(id, field string) error {
	return r.WriteText(id, field, "")
}

// WriteText полностью перезаписывает содержимое записи.
func (r fileRecords) WriteText(id, field, value string) error {
	if err := os.WriteFile(r.path(id, field), []byte(value), 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", models.ErrStorageIO, field, err)
	}

	return nil
}

// ReadText возвращает содержимое записи; отсутствие файла — валидное «не задано».
func (r fileRecords) ReadText(id, field string) (string, bool, error) {
	b, err := os.ReadFile(r.path(id, field))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: read %s: %v", models.ErrStorageIO, field, err)
	}

	return string(b), true, nil
}

// Delete удаляет запись; удаление несуществующей — no-op.
func (r fileRecords) Delete(id, field string) error {
	if err := os.Remove(r.path(id, field)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: delete %s: %v", models.ErrStorageIO, field, err)
	}

	return nil
}
