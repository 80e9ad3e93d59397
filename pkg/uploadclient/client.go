// Package uploadclient — HTTP-клиент протокола докачиваемых загрузок.
package uploadclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sir_venger/upload_lite/pkg/uploadproto"
)

// Client умеет регистрировать загрузку, дописывать данные и докачиваться после обрывов.
type Client struct {
	c *http.Client
	// Verbose включает однострочный индикатор прогресса на stderr.
	Verbose bool
}

// New создаёт HTTP-клиент по умолчанию.
func New() *Client {
	return &Client{
		c: &http.Client{},
	}
}

// Create регистрирует загрузку и возвращает её URL.
// length < 0 означает «длина будет объявлена позже».
func (h *Client) Create(ctx context.Context, baseURL string, length int64, metadata string) (string, error) {
	base := strings.TrimRight(baseURL, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+uploadproto.UploadsPath, nil)
	if err != nil {
		return "", err
	}

	if length >= 0 {
		req.Header.Set(uploadproto.HeaderUploadLength, strconv.FormatInt(length, 10))
	} else {
		req.Header.Set(uploadproto.HeaderUploadDeferLength, "1")
	}
	if metadata != "" {
		req.Header.Set(uploadproto.HeaderUploadMetadata, metadata)
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("upload create failed: %s", resp.Status)
	}
	loc := resp.Header.Get("Location")
	if loc == "" {
		return "", fmt.Errorf("no Location in create response")
	}

	return base + loc, nil
}

// Offset спрашивает у сервера текущий подтверждённый оффсет загрузки.
func (h *Client) Offset(ctx context.Context, uploadURL string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, uploadURL, nil)
	if err != nil {
		return 0, err
	}

	resp, err := h.c.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("upload HEAD failed: %s", resp.Status)
	}

	return strconv.ParseInt(resp.Header.Get(uploadproto.HeaderUploadOffset), 10, 64)
}

// Append отправляет один PATCH с данными начиная с offset и возвращает новый оффсет.
func (h *Client) Append(ctx context.Context, uploadURL string, offset int64, body io.Reader) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, uploadURL, body)
	if err != nil {
		return offset, err
	}
	req.Header.Set(uploadproto.HeaderUploadOffset, strconv.FormatInt(offset, 10))
	req.Header.Set("Content-Type", "application/offset+octet-stream")

	resp, err := h.c.Do(req)
	if err != nil {
		return offset, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return offset, fmt.Errorf("upload PATCH failed: %s", resp.Status)
	}

	return strconv.ParseInt(resp.Header.Get(uploadproto.HeaderUploadOffset), 10, 64)
}

// Upload гонит содержимое r до конца, докачиваясь с серверного оффсета после обрывов.
func (h *Client) Upload(ctx context.Context, baseURL string, r io.ReadSeeker, size int64, metadata string) (string, error) {
	uploadURL, err := h.Create(ctx, baseURL, size, metadata)
	if err != nil {
		return "", err
	}

	var offset int64
	for offset < size {
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return uploadURL, err
		}

		var body io.Reader = io.LimitReader(r, size-offset)
		if h.Verbose {
			body = newProgressReader(body, "Uploading", offset, size)
		}

		next, aerr := h.Append(ctx, uploadURL, offset, body)
		if aerr != nil {
			if ctx.Err() != nil {
				return uploadURL, ctx.Err()
			}
			// Сервер мог принять часть данных: сверяем оффсет и продолжаем оттуда.
			srvOffset, oerr := h.Offset(ctx, uploadURL)
			if oerr != nil || srvOffset <= offset {
				return uploadURL, aerr
			}
			offset = srvOffset
			continue
		}
		offset = next
	}

	return uploadURL, nil
}
