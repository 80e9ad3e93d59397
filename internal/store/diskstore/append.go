package diskstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/sir_venger/upload_lite/internal/models"
)

// AppendChunk дописывает байты из src в конец файла данных загрузки и возвращает
// число байт, записанных в рамках этого вызова.
//
// Отмена ctx — не ошибка: чтение останавливается, уже буферизованные байты
// сбрасываются на диск, а chunkcomplete не выставляется, чтобы следующий вызов
// продолжил с реального размера файла.
func (s *Store) AppendChunk(ctx context.Context, id string, src io.Reader) (int64, error) {
	declared := models.LengthUnknown
	if raw, ok, err := s.records.ReadText(id, recordUploadLength); err != nil {
		return 0, err
	} else if ok && raw != "" {
		declared, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: malformed %s record: %v", models.ErrStorageIO, recordUploadLength, err)
		}
	}

	f, err := os.OpenFile(s.dataPath(id), os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, models.ErrNotFound
		}
		return 0, fmt.Errorf("%w: open data file: %v", models.ErrStorageIO, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return 0, fmt.Errorf("%w: stat data file: %v", models.ErrStorageIO, err)
	}
	position := st.Size()

	// Загрузка уже добрана до объявленной длины — идемпотентный no-op.
	if declared != models.LengthUnknown && position == declared {
		return 0, nil
	}

	// Маркер прошлой попытки снимается до первого байта: пока попытка в полёте,
	// chunkstart есть, chunkcomplete нет.
	if err = s.records.Delete(id, recordChunkComplete); err != nil {
		return 0, err
	}
	if err = s.records.WriteText(id, recordChunkStart, strconv.FormatInt(position, 10)); err != nil {
		return 0, err
	}

	readBuf := readBufPool.Get().(*[]byte)
	defer readBufPool.Put(readBuf)
	writeBuf := writeBufPool.Get().(*[]byte)
	defer func() {
		*writeBuf = (*writeBuf)[:0]
		writeBufPool.Put(writeBuf)
	}()

	var (
		written      int64
		disconnected bool
		srcErr       error
		overflowErr  error
	)

	flush := func() error {
		if len(*writeBuf) == 0 {
			return nil
		}
		n, werr := f.Write(*writeBuf)
		written += int64(n)
		if werr != nil {
			return fmt.Errorf("%w: write data file: %v", models.ErrStorageIO, werr)
		}
		if werr = f.Sync(); werr != nil {
			return fmt.Errorf("%w: sync data file: %v", models.ErrStorageIO, werr)
		}
		*writeBuf = (*writeBuf)[:0]

		return nil
	}

	for {
		if ctx.Err() != nil {
			disconnected = true
			break
		}

		n, rerr := src.Read(*readBuf)
		if n > 0 {
			position += int64(n)
			// Переполнение ловится до буферизации: лишний блок в буфер не попадает,
			// а всё накопленное до него штатно уходит на диск финальным сбросом.
			if declared != models.LengthUnknown && position > declared {
				overflowErr = fmt.Errorf("%w: upload %s: %d bytes over declared %d",
					models.ErrOverflow, id, position-declared, declared)
				break
			}
			if len(*writeBuf)+n > cap(*writeBuf) {
				if err := flush(); err != nil {
					return written, err
				}
			}
			*writeBuf = append(*writeBuf, (*readBuf)[:n]...)
		}
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				break
			}
			if ctx.Err() != nil || errors.Is(rerr, context.Canceled) {
				disconnected = true
				break
			}
			srcErr = fmt.Errorf("%w: %v", models.ErrSourceRead, rerr)
			break
		}
		if n == 0 {
			// Чтение нулевой длины без ошибки — конец источника.
			break
		}
	}

	// Финальный сброс выполняется на всех путях выхода из цикла — обрыв, ошибка
	// чтения, переполнение: буферизованные, но не записанные байты терять нельзя.
	if err := flush(); err != nil {
		return written, err
	}
	if overflowErr != nil {
		return written, overflowErr
	}
	if srcErr != nil {
		return written, srcErr
	}

	if !disconnected {
		if err := s.records.CreateEmpty(id, recordChunkComplete); err != nil {
			return written, err
		}
	}

	return written, nil
}
