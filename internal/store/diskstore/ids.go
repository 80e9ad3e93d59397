package diskstore

import "github.com/google/uuid"

// UUIDProvider выделяет идентификаторы на основе случайных UUID.
// Метаданные клиента в генерации не участвуют.
type UUIDProvider struct{}

func (UUIDProvider) AllocateID(_ string) (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}

	return u.String(), nil
}
