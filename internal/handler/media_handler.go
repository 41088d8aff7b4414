package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"media-share-server/internal/model/requestresponse"
	"media-share-server/internal/ports"
	"media-share-server/internal/security"
	"media-share-server/internal/service"
	"media-share-server/internal/util"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

type MediaHandler struct {
	ports.MediaService
}

func NewMediaHandler(mediaService ports.MediaService) *MediaHandler {
	return &MediaHandler{mediaService}
}

// IngestMedia godoc
// @Summary Загрузка медиа-файла
// @Description Принимает файл через multipart/form-data, возвращает share-ссылку и QR-код.
// Опциональные поля формы: ttl_days (срок жизни, 1-30), theme_options (JSON для отображения).
// @Tags Media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Медиа-файл"
// @Param ttl_days formData int false "Срок жизни записи в днях (по умолчанию из конфигурации)"
// @Param theme_options formData string false "JSON с настройками отображения, передаётся как есть"
// @Param Authorization header string false "Bearer токен с меткой владельца" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.IngestMediaResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный формат запроса"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/media [post]
func (h *MediaHandler) IngestMedia(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		util.HandleError(w, "validation", "неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "validation", "файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		util.HandleError(w, "internal", "ошибка чтения файла", http.StatusInternalServerError)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	ttlDays := 0
	if ttlStr := r.FormValue("ttl_days"); ttlStr != "" {
		if parsed, err := strconv.Atoi(ttlStr); err != nil {
			util.HandleError(w, "validation", "неверный формат ttl_days", http.StatusBadRequest)
			return
		} else {
			ttlDays = parsed
		}
	}

	claims, err := security.GetClaimsFromContext(ctx)
	ownerUUID := security.AnonymousOwner
	if err == nil {
		ownerUUID = claims.OwnerUUID
	}

	params := &ports.IngestParams{
		OwnerUUID:    ownerUUID,
		FileName:     header.Filename,
		ContentType:  contentType,
		Data:         fileBytes,
		TTLDays:      ttlDays,
		ThemeOptions: []byte(r.FormValue("theme_options")),
	}

	result, err := h.MediaService.IngestMedia(ctx, params)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrValidation):
			util.HandleError(w, "validation", err.Error(), http.StatusBadRequest)
		case errors.Is(err, service.ErrIDCollision):
			util.HandleError(w, "id_collision", "временный сбой, повторите запрос", http.StatusInternalServerError)
		case errors.Is(err, service.ErrPersistence):
			util.HandleError(w, "internal", "внутренняя ошибка сервера", http.StatusInternalServerError)
		default:
			util.HandleError(w, "internal", "неизвестная ошибка", http.StatusInternalServerError)
		}
		return
	}

	response := requestresponse.IngestMediaResponse{
		Data: requestresponse.IngestMediaData{
			UUID:          result.Media.UUID,
			ShareURL:      result.ShareURL,
			QRImageBase64: base64.StdEncoding.EncodeToString(result.QRImage),
			Metadata:      requestresponse.MediaMetadataFromModel(result.Media),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// GetMedia godoc
// @Summary Получение медиа по ID
// @Description Возвращает pre-signed URL скачивания и мета-данные. Просроченная запись отдаёт 410,
// удалённая или несуществующая — 404.
// @Tags Media
// @Accept json
// @Produce json
// @Param media_id path string true "Идентификатор медиа (32 hex-символа)"
// @Success 200 {object} requestresponse.GetMediaResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} requestresponse.ErrorResponse "Медиа не найдено"
// @Failure 410 {object} requestresponse.ErrorResponse "Срок жизни медиа истёк"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/media/{media_id} [get]
func (h *MediaHandler) GetMedia(w http.ResponseWriter, r *http.Request) {
	mediaUUID := chi.URLParam(r, "media_id")

	result, err := h.MediaService.GetMedia(r.Context(), mediaUUID)
	if err != nil {
		h.handleRetrievalError(w, err)
		return
	}

	response := requestresponse.GetMediaResponse{
		Data: requestresponse.GetMediaData{
			DownloadURL: result.DownloadURL,
			Metadata:    requestresponse.MediaMetadataFromModel(result.Media),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetMediaQR godoc
// @Summary QR-код share-ссылки
// @Description Повторный рендер QR-кода для живой записи, отдаёт PNG.
// @Tags Media
// @Produce png
// @Param media_id path string true "Идентификатор медиа (32 hex-символа)"
// @Success 200 {file} file "PNG с QR-кодом"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный идентификатор"
// @Failure 404 {object} requestresponse.ErrorResponse "Медиа не найдено"
// @Failure 410 {object} requestresponse.ErrorResponse "Срок жизни медиа истёк"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/media/{media_id}/qr [get]
func (h *MediaHandler) GetMediaQR(w http.ResponseWriter, r *http.Request) {
	mediaUUID := chi.URLParam(r, "media_id")

	qrImage, err := h.MediaService.GetMediaQR(r.Context(), mediaUUID)
	if err != nil {
		h.handleRetrievalError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(qrImage)))
	w.WriteHeader(http.StatusOK)
	w.Write(qrImage)
}

// DeleteMedia godoc
// @Summary Удаление медиа
// @Description Помечает запись удалённой, удаляет blob. Только владелец (или админ-токен).
// Повторное удаление возвращает 404.
// @Tags Media
// @Produce json
// @Param media_id path string true "Идентификатор медиа (32 hex-символа)"
// @Param Authorization header string false "Bearer токен с меткой владельца" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ResponseMessage
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный идентификатор"
// @Failure 403 {object} requestresponse.ErrorResponse "Запись принадлежит другому владельцу"
// @Failure 404 {object} requestresponse.ErrorResponse "Медиа не найдено"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/media/{media_id} [delete]
func (h *MediaHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	mediaUUID := chi.URLParam(r, "media_id")

	claims, err := security.GetClaimsFromContext(r.Context())
	ownerUUID := security.AnonymousOwner
	isAdmin := false
	if err == nil {
		ownerUUID = claims.OwnerUUID
		isAdmin = claims.IsAdmin
	}

	err = h.MediaService.DeleteMedia(r.Context(), mediaUUID, ownerUUID, isAdmin)
	if err != nil {
		log.Println(err)
		switch {
		case errors.Is(err, service.ErrInvalidMediaID):
			util.HandleError(w, "validation", "некорректный идентификатор медиа", http.StatusBadRequest)
		case errors.Is(err, service.ErrMediaNotFound):
			util.HandleError(w, "not_found", "медиа не найдено", http.StatusNotFound)
		case errors.Is(err, service.ErrAccessDenied):
			util.HandleError(w, "access_denied", "доступ запрещён", http.StatusForbidden)
		default:
			util.HandleError(w, "internal", "внутренняя ошибка сервера", http.StatusInternalServerError)
		}
		return
	}

	response := requestresponse.ResponseMessage{
		Data: map[string]bool{mediaUUID: true},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// handleRetrievalError : общий маппинг ошибок чтения на HTTP-коды;
// 404 и 410 различимы, чтобы клиент мог отличить "не было" от "было и истекло"
func (h *MediaHandler) handleRetrievalError(w http.ResponseWriter, err error) {
	log.Println(err)
	switch {
	case errors.Is(err, service.ErrInvalidMediaID):
		util.HandleError(w, "validation", "некорректный идентификатор медиа", http.StatusBadRequest)
	case errors.Is(err, service.ErrMediaNotFound):
		util.HandleError(w, "not_found", "медиа не найдено", http.StatusNotFound)
	case errors.Is(err, service.ErrMediaExpired):
		util.HandleError(w, "expired", "срок жизни медиа истёк", http.StatusGone)
	default:
		util.HandleError(w, "internal", "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
