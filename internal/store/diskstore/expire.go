package diskstore

import "time"

// expirationLayout — фиксированная ширина: без усечения хвостовых нулей запись
// сортируется лексикографически и однозначно парсится обратно в тот же инстант.
const expirationLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SetExpiration перезаписывает срок жизни загрузки целиком; повторный вызов
// оставляет только последнее значение. Существование id не проверяется: запись
// по несуществующей загрузке молча создаст сайдкар-файл.
func (s *Store) SetExpiration(id string, at time.Time) error {
	return s.records.WriteText(id, recordExpiration, at.UTC().Format(expirationLayout))
}
