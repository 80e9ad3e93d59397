package models

import "time"

// LengthUnknown — сентинел для загрузок, длина которых не объявлена при создании.
const LengthUnknown int64 = -1

// UploadInfo — снимок состояния загрузки, собранный из файла данных и сайдкар-записей.
type UploadInfo struct {
	ID string
	// DeclaredLength равен LengthUnknown, пока клиент не объявил длину.
	DeclaredLength int64
	// WrittenLength всегда выводится из текущего размера файла данных.
	WrittenLength int64
	Metadata      string
	// ExpiresAt нулевой, если срок жизни не выставлялся.
	ExpiresAt time.Time
	// ChunkStart — оффсет начала последней попытки дозаписи; -1, если попыток не было.
	ChunkStart int64
	// ChunkComplete истинен, когда последняя попытка дозаписи завершилась без обрыва.
	ChunkComplete bool
}
