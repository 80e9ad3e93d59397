package uploadhttp

import "testing"

func TestSafeID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"6a7b1c9e-1111-2222-3333-444455556666", true},
		{"upload_01", true},
		{"a.b", true},
		{"", true}, // пустой id отсекается раньше, в requireUploadID
		{".hidden", false},
		{"..", false},
		{"a/b", false},
		{"a\\b", false},
		{"a b", false},
		{"файл", false},
	}

	for _, c := range cases {
		if got := safeID(c.id); got != c.want {
			t.Errorf("safeID(%q) = %v, want %v", c.id, got, c.want)
		}
	}
}
