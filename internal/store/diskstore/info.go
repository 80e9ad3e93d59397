package diskstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/sir_venger/upload_lite/internal/models"
)

// Info собирает текущее состояние загрузки из файла данных и сайдкар-записей.
func (s *Store) Info(id string) (models.UploadInfo, error) {
	st, err := os.Stat(s.dataPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.UploadInfo{}, models.ErrNotFound
		}
		return models.UploadInfo{}, fmt.Errorf("%w: stat data file: %v", models.ErrStorageIO, err)
	}

	info := models.UploadInfo{
		ID:             id,
		DeclaredLength: models.LengthUnknown,
		WrittenLength:  st.Size(),
		ChunkStart:     -1,
	}

	if raw, ok, err := s.records.ReadText(id, recordUploadLength); err != nil {
		return models.UploadInfo{}, err
	} else if ok && raw != "" {
		n, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			return models.UploadInfo{}, fmt.Errorf("%w: malformed %s record: %v", models.ErrStorageIO, recordUploadLength, perr)
		}
		info.DeclaredLength = n
	}

	if raw, ok, err := s.records.ReadText(id, recordMetadata); err != nil {
		return models.UploadInfo{}, err
	} else if ok {
		info.Metadata = raw
	}

	if raw, ok, err := s.records.ReadText(id, recordExpiration); err != nil {
		return models.UploadInfo{}, err
	} else if ok && raw != "" {
		t, perr := time.Parse(expirationLayout, raw)
		if perr != nil {
			return models.UploadInfo{}, fmt.Errorf("%w: malformed %s record: %v", models.ErrStorageIO, recordExpiration, perr)
		}
		info.ExpiresAt = t
	}

	if raw, ok, err := s.records.ReadText(id, recordChunkStart); err != nil {
		return models.UploadInfo{}, err
	} else if ok && raw != "" {
		n, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			return models.UploadInfo{}, fmt.Errorf("%w: malformed %s record: %v", models.ErrStorageIO, recordChunkStart, perr)
		}
		info.ChunkStart = n
	}

	if _, ok, err := s.records.ReadText(id, recordChunkComplete); err != nil {
		return models.UploadInfo{}, err
	} else {
		info.ChunkComplete = ok
	}

	return info, nil
}

// Open возвращает поток уже принятых байт загрузки.
func (s *Store) Open(id string) (io.ReadCloser, error) {
	f, err := os.Open(s.dataPath(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%w: open data file: %v", models.ErrStorageIO, err)
	}

	return f, nil
}
