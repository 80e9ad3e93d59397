// Package uploadhttp реализует Upload API — HTTP-интерфейс докачиваемых загрузок
// поверх локального диска. Основные эндпоинты:
//   - POST /uploads — регистрирует загрузку и возвращает Location с новым id.
//   - PATCH /uploads/{id} — дописывает тело запроса в хвост файла (докачка).
//   - HEAD /uploads/{id} — отдаёт текущий Upload-Offset и объявленную длину.
//   - GET /uploads/{id} — отдаёт уже принятые байты как application/octet-stream.
//   - GET /health — отдаёт агрегированные метрики по каталогу данных.
package uploadhttp
