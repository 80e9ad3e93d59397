package diskstore

import (
	"testing"
	"time"
)

func TestSetExpiration_Overwrite(t *testing.T) {
	s, dir := newTestStore(t)

	id, err := s.NewUpload(10, "")
	if err != nil {
		t.Fatal(err)
	}

	first := time.Date(2026, 1, 2, 3, 4, 5, 600000000, time.UTC)
	second := time.Date(2026, 8, 9, 10, 11, 12, 0, time.FixedZone("MSK", 3*3600))

	if err := s.SetExpiration(id, first); err != nil {
		t.Fatal(err)
	}
	if err := s.SetExpiration(id, second); err != nil {
		t.Fatal(err)
	}

	// Должно читаться только второе значение, с точностью до инстанта.
	info, err := s.Info(id)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ExpiresAt.Equal(second) {
		t.Fatalf("expires = %v, want %v", info.ExpiresAt, second)
	}

	raw, _ := readRecord(t, dir, id, recordExpiration)
	if parsed, err := time.Parse(expirationLayout, raw); err != nil || !parsed.Equal(second) {
		t.Fatalf("record %q does not round-trip: %v", raw, err)
	}
}

func TestSetExpiration_EncodingSortable(t *testing.T) {
	s, dir := newTestStore(t)

	// Целая секунда против полусекунды: усечённая кодировка ("…05Z" > "…05.5Z")
	// сортировала бы эти инстанты в обратном порядке.
	earlier := time.Date(2026, 3, 4, 5, 6, 5, 0, time.UTC)
	later := time.Date(2026, 3, 4, 5, 6, 5, 500000000, time.UTC)

	if err := s.SetExpiration("u-a", earlier); err != nil {
		t.Fatal(err)
	}
	if err := s.SetExpiration("u-b", later); err != nil {
		t.Fatal(err)
	}

	encEarlier, _ := readRecord(t, dir, "u-a", recordExpiration)
	encLater, _ := readRecord(t, dir, "u-b", recordExpiration)
	if len(encEarlier) != len(encLater) {
		t.Fatalf("encoding is not fixed-width: %q vs %q", encEarlier, encLater)
	}
	if !(encEarlier < encLater) {
		t.Fatalf("lexicographic order broken: %q >= %q", encEarlier, encLater)
	}
}

func TestSetExpiration_UnknownUploadCreatesRecord(t *testing.T) {
	s, dir := newTestStore(t)

	if err := s.SetExpiration("ghost", time.Now()); err != nil {
		t.Fatal(err)
	}
	if _, ok := readRecord(t, dir, "ghost", recordExpiration); !ok {
		t.Fatal("expiration record not created")
	}
}
