package diskstore

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sir_venger/upload_lite/internal/models"
)

// NewUpload выделяет id и инициализирует файл данных вместе со всеми сайдкар-записями.
// Частично созданное состояние при ошибке не откатывается: создание атомарно лишь
// в отсутствие сбоев I/O.
func (s *Store) NewUpload(declaredLength int64, metadata string) (string, error) {
	id, err := s.ids.AllocateID(metadata)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrIDAllocation, err)
	}

	f, err := os.OpenFile(s.dataPath(id), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("%w: create data file: %v", models.ErrStorageIO, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("%w: close data file: %v", models.ErrStorageIO, err)
	}

	if err = s.records.CreateEmpty(id, recordChunkComplete); err != nil {
		return "", err
	}
	if err = s.records.CreateEmpty(id, recordChunkStart); err != nil {
		return "", err
	}
	if err = s.records.CreateEmpty(id, recordExpiration); err != nil {
		return "", err
	}

	// Пустая запись длины означает «длина пока не объявлена».
	if declaredLength == models.LengthUnknown {
		err = s.records.CreateEmpty(id, recordUploadLength)
	} else {
		err = s.records.WriteText(id, recordUploadLength, strconv.FormatInt(declaredLength, 10))
	}
	if err != nil {
		return "", err
	}

	if err = s.records.WriteText(id, recordMetadata, metadata); err != nil {
		return "", err
	}

	return id, nil
}
