package integration

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/sir_venger/upload_lite/pkg/uploadclient"
	"golang.org/x/sync/errgroup"
)

func TestClientUpload_RoundTrip(t *testing.T) {
	srv := newServer(t, 0)

	payload := bytes.Repeat([]byte("0123456789abcdef"), 4096) // 64 KiB
	cli := uploadclient.New()

	url, err := cli.Upload(context.Background(), srv.URL, bytes.NewReader(payload), int64(len(payload)), "name dGVzdA==")
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	got, _ := io.ReadAll(resp.Body)
	if !bytes.Equal(got, payload) {
		t.Fatalf("downloaded %d bytes, want %d, content mismatch", len(got), len(payload))
	}
}

func TestClientUpload_Concurrent(t *testing.T) {
	srv := newServer(t, 0)

	// Дозаписи разных id независимы: гоняем несколько загрузок параллельно.
	eg, ctx := errgroup.WithContext(context.Background())
	for i := 0; i < 8; i++ {
		i := i
		eg.Go(func() error {
			payload := bytes.Repeat([]byte{byte('a' + i)}, 20000+i*1000)
			cli := uploadclient.New()

			url, err := cli.Upload(ctx, srv.URL, bytes.NewReader(payload), int64(len(payload)), "")
			if err != nil {
				return err
			}

			resp, err := http.Get(url)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			got, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("upload %d: content mismatch (%d vs %d bytes)", i, len(got), len(payload))
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}
}
