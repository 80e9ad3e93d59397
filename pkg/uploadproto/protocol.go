// Package uploadproto описывает HTTP-протокол докачиваемых загрузок.
package uploadproto

// Заголовки и параметры протокола докачиваемых загрузок.
const (
	UploadsPath = "/uploads"

	HeaderUploadOffset      = "Upload-Offset"
	HeaderUploadLength      = "Upload-Length"
	HeaderUploadDeferLength = "Upload-Defer-Length"
	HeaderUploadMetadata    = "Upload-Metadata"
	HeaderUploadExpires     = "Upload-Expires"
)
