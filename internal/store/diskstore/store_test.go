package diskstore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// seqIDs выдаёт предсказуемые идентификаторы для тестов.
type seqIDs struct{ n int }

func (s *seqIDs) AllocateID(string) (string, error) {
	s.n++
	return fmt.Sprintf("upload-%d", s.n), nil
}

// failIDs всегда отказывает в выделении id.
type failIDs struct{}

func (failIDs) AllocateID(string) (string, error) {
	return "", fmt.Errorf("generator down")
}

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return New(dir, &seqIDs{}), dir
}

func readData(t *testing.T, dir, id string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, id))
	if err != nil {
		t.Fatalf("read data file: %v", err)
	}
	return b
}

func readRecord(t *testing.T, dir, id, field string) (string, bool) {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, id+"."+field))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false
		}
		t.Fatalf("read record %s: %v", field, err)
	}
	return string(b), true
}
