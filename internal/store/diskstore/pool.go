package diskstore

import "sync"

const (
	// Размеры буферов подобраны независимо: чтение — под размер сетевых кусков,
	// запись — под стоимость дисковой записи и частоту fsync.
	readBufferSize  = 64 << 10
	writeBufferSize = 512 << 10
)

// Пулы буферов приватны для движка, чтобы содержимое не утекало между загрузками
// и другими частями процесса. Буферы возвращаются на каждом пути выхода.
var (
	readBufPool = sync.Pool{
		New: func() any {
			b := make([]byte, readBufferSize)
			return &b
		},
	}
	writeBufPool = sync.Pool{
		New: func() any {
			b := make([]byte, 0, writeBufferSize)
			return &b
		},
	}
)
