package diskstore

import (
	"path/filepath"
)

// Имена полей сайдкар-записей. Контент chunkcomplete не значим — важен сам факт наличия.
const (
	recordUploadLength  = "uploadlength"
	recordMetadata      = "metadata"
	recordExpiration    = "expiration"
	recordChunkStart    = "chunkstart"
	recordChunkComplete = "chunkcomplete"
)

// IDProvider выделяет уникальные, безопасные для файловой системы идентификаторы загрузок.
type IDProvider interface {
	AllocateID(metadata string) (string, error)
}

// Store пишет загрузки и их сайдкар-записи в один каталог локального диска.
type Store struct {
	dir     string
	ids     IDProvider
	records recordStore
}

// New создаёт стор поверх каталога dir.
func New(dir string, ids IDProvider) *Store {
	return &Store{
		dir:     dir,
		ids:     ids,
		records: fileRecords{dir: dir},
	}
}

func (s *Store) dataPath(id string) string {
	return filepath.Join(s.dir, id)
}
