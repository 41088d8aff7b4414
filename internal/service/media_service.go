package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"media-share-server/config"
	"media-share-server/internal/model"
	"media-share-server/internal/ports"
	"media-share-server/internal/repository"
	"media-share-server/internal/util"
	"path/filepath"
	"strings"
	"time"
)

const (
	// максимальный срок жизни медиа, который может запросить клиент
	maxMediaTTLDays = 30
	// параметры повторов для транзиентных сбоев S3 и БД
	retryAttempts  = 3
	retryBaseDelay = 100 * time.Millisecond
)

type MediaService struct {
	mediaRepository ports.MediaRepository
	cacheRepository ports.CacheRepository
	storage         ports.S3Storage
	qrGenerator     ports.QRGenerator
	shareBaseURL    string
	defaultTTL      time.Duration
	presignTTL      time.Duration
}

func NewMediaService(
	mediaRepository ports.MediaRepository,
	cacheRepository ports.CacheRepository,
	storage ports.S3Storage,
	qrGenerator ports.QRGenerator,
	shareBaseURL string,
	defaultTTL time.Duration,
	presignTTL time.Duration,
) *MediaService {
	return &MediaService{
		mediaRepository: mediaRepository,
		cacheRepository: cacheRepository,
		storage:         storage,
		qrGenerator:     qrGenerator,
		shareBaseURL:    strings.TrimSuffix(shareBaseURL, "/"),
		defaultTTL:      defaultTTL,
		presignTTL:      presignTTL,
	}
}

// IngestMedia : принимает загрузку — пишет blob в S3, делает условную вставку
// мета-данных, строит share URL и рендерит QR-код.
// Инвариант: публично разрешимый id никогда не указывает на отсутствующие
// данные — при сбое вставки мета-данных осиротевший blob удаляется (best-effort).
func (s *MediaService) IngestMedia(ctx context.Context, params *ports.IngestParams) (*model.IngestResult, error) {
	if err := validateIngestParams(params); err != nil {
		return nil, err
	}

	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[MediaService] database connection не найден в context")
	}

	ttl, err := s.resolveTTL(params.TTLDays)
	if err != nil {
		return nil, err
	}

	ownerUUID := params.OwnerUUID
	if ownerUUID == "" {
		ownerUUID = "anonymous"
	}

	var media *model.MediaRecord

	// одна повторная генерация id на случай коллизии; вторая коллизия подряд
	// при корректном генераторе невозможна и всплывает наружу
	for attempt := 0; attempt < 2; attempt++ {
		mediaUUID := util.GenerateMediaID()
		storageKey := fmt.Sprintf("media/%s/%s", mediaUUID, filepath.Base(params.FileName))

		err = util.Retry(ctx, retryAttempts, retryBaseDelay, func() error {
			return s.storage.PutObject(ctx, storageKey, params.Data, params.ContentType)
		})
		if err != nil {
			return nil, fmt.Errorf("%w: не удалось записать blob: %v", ErrPersistence, err)
		}

		now := time.Now()
		candidate := &model.MediaRecord{
			UUID:         mediaUUID,
			OwnerUUID:    ownerUUID,
			FileName:     filepath.Base(params.FileName),
			ContentType:  params.ContentType,
			SizeBytes:    int64(len(params.Data)),
			StorageKey:   storageKey,
			Status:       model.StatusActive,
			ThemeOptions: params.ThemeOptions,
			CreatedAt:    now,
			ExpiresAt:    now.Add(ttl).Unix(),
		}

		err = util.Retry(ctx, retryAttempts, retryBaseDelay, func() error {
			return s.mediaRepository.CreateIfAbsent(ctx, db, candidate)
		}, repository.ErrMediaExists)

		if err == nil {
			media = candidate
			break
		}

		// мета-данные не записались — подчищаем осиротевший blob
		s.deleteBlobBestEffort(ctx, storageKey)

		if errors.Is(err, repository.ErrMediaExists) {
			log.Printf("[MediaService] коллизия идентификатора %s, попытка %d", mediaUUID, attempt+1)
			continue
		}
		return nil, fmt.Errorf("%w: не удалось сохранить мета-данные: %v", ErrPersistence, err)
	}

	if media == nil {
		return nil, ErrIDCollision
	}

	shareURL := s.shareURL(media.UUID)

	// отказ рендера QR не отменяет загрузку — ссылка уже рабочая
	qrImage, err := s.qrGenerator.Encode(shareURL)
	if err != nil {
		log.Printf("[MediaService] не удалось отрендерить QR-код для %s: %v", media.UUID, err)
		qrImage = nil
	}

	log.Printf("[MediaService] медиа %s успешно загружено (владелец %s)", media.UUID, media.OwnerUUID)

	return &model.IngestResult{
		Media:    media,
		ShareURL: shareURL,
		QRImage:  qrImage,
	}, nil
}

// GetMedia : разрешает идентификатор в pre-signed URL скачивания и мета-данные.
// Просроченность проверяется лениво при каждом чтении, кэш на корректность не влияет.
func (s *MediaService) GetMedia(ctx context.Context, mediaUUID string) (*model.GetMediaResult, error) {
	media, err := s.loadActiveMedia(ctx, mediaUUID)
	if err != nil {
		return nil, err
	}

	// подпись живёт не дольше самой записи: утёкший URL не продлевает доступ
	expire := s.presignTTL
	if media.ExpiresAt > 0 {
		if remaining := time.Until(time.Unix(media.ExpiresAt, 0)); remaining < expire {
			expire = remaining
		}
	}

	var downloadURL string
	err = util.Retry(ctx, retryAttempts, retryBaseDelay, func() error {
		var genErr error
		downloadURL, genErr = s.storage.GeneratePresignedGetURL(ctx, media.StorageKey, expire)
		return genErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: не удалось сгенерировать pre-signed GET URL: %v", ErrPersistence, err)
	}

	return &model.GetMediaResult{
		Media:       media,
		DownloadURL: downloadURL,
	}, nil
}

// GetMediaQR : повторный рендер QR-кода share-ссылки для живой записи
func (s *MediaService) GetMediaQR(ctx context.Context, mediaUUID string) ([]byte, error) {
	media, err := s.loadActiveMedia(ctx, mediaUUID)
	if err != nil {
		return nil, err
	}

	return s.qrGenerator.Encode(s.shareURL(media.UUID))
}

// DeleteMedia : помечает запись удалённой (идемпотентно: повторное удаление
// возвращает ErrMediaNotFound) и подчищает blob best-effort
func (s *MediaService) DeleteMedia(ctx context.Context, mediaUUID string, ownerUUID string, isAdmin bool) error {
	if !util.ValidMediaID(mediaUUID) {
		return ErrInvalidMediaID
	}

	exec, rollback, commit, err := s.mediaRepository.BeginTX(ctx)
	if err != nil {
		return util.LogError("[MediaService] не удалось начать транзакцию", err)
	}
	defer rollback()

	media, err := s.mediaRepository.GetByUUID(ctx, exec, mediaUUID)
	if errors.Is(err, repository.ErrMediaNotFound) {
		return ErrMediaNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// удалённая запись неотличима от несуществующей
	if media.Status == model.StatusDeleted {
		return ErrMediaNotFound
	}

	if media.OwnerUUID != ownerUUID && !isAdmin {
		return ErrAccessDenied
	}

	storageKey, err := s.mediaRepository.Delete(ctx, exec, mediaUUID, media.OwnerUUID)
	if errors.Is(err, repository.ErrMediaNotFound) {
		return ErrMediaNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if err := commit(); err != nil {
		return util.LogError("[MediaService] ошибка коммита транзакции", err)
	}

	if err := s.cacheRepository.DeleteMedia(ctx, mediaUUID); err != nil {
		log.Printf("[MediaService] ошибка удаления медиа из кэша: %v", err)
	}

	s.deleteBlobBestEffort(ctx, storageKey)

	log.Printf("[MediaService] медиа %s успешно удалено", mediaUUID)
	return nil
}

// loadActiveMedia : общий путь чтения — валидация id, кэш, БД, ленивая
// проверка статуса и срока жизни
func (s *MediaService) loadActiveMedia(ctx context.Context, mediaUUID string) (*model.MediaRecord, error) {
	if !util.ValidMediaID(mediaUUID) {
		return nil, ErrInvalidMediaID
	}

	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[MediaService] database connection не найден в context")
	}

	media, err := s.cacheRepository.GetMedia(ctx, mediaUUID)
	if err != nil {
		log.Printf("[MediaService] ошибка кэширования: %v", err)
	}

	if media == nil {
		err = util.Retry(ctx, retryAttempts, retryBaseDelay, func() error {
			var getErr error
			media, getErr = s.mediaRepository.GetByUUID(ctx, db, mediaUUID)
			return getErr
		}, repository.ErrMediaNotFound)

		if errors.Is(err, repository.ErrMediaNotFound) {
			return nil, ErrMediaNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		if media.Status == model.StatusActive && !media.Expired(time.Now()) {
			if err := s.cacheRepository.SetMedia(ctx, media); err != nil {
				log.Printf("[MediaService] ошибка кэширования медиа: %v", err)
			}
		}
	}

	if media.Status == model.StatusDeleted {
		return nil, ErrMediaNotFound
	}
	if media.Status == model.StatusExpired {
		return nil, ErrMediaExpired
	}

	if media.Expired(time.Now()) {
		// попутно фиксируем статус; для корректности это не обязательно —
		// проверка по времени выполняется при каждом чтении заново
		if err := s.mediaRepository.UpdateStatus(ctx, db, mediaUUID, model.StatusExpired); err != nil {
			log.Printf("[MediaService] не удалось пометить медиа %s просроченным: %v", mediaUUID, err)
		}
		if err := s.cacheRepository.DeleteMedia(ctx, mediaUUID); err != nil {
			log.Printf("[MediaService] ошибка удаления медиа из кэша: %v", err)
		}
		return nil, ErrMediaExpired
	}

	return media, nil
}

func (s *MediaService) shareURL(mediaUUID string) string {
	return s.shareBaseURL + "/m/" + mediaUUID
}

func (s *MediaService) resolveTTL(ttlDays int) (time.Duration, error) {
	if ttlDays < 0 || ttlDays > maxMediaTTLDays {
		return 0, fmt.Errorf("%w: срок жизни должен быть от 1 до %d дней", ErrValidation, maxMediaTTLDays)
	}
	if ttlDays == 0 {
		return s.defaultTTL, nil
	}
	return time.Duration(ttlDays) * 24 * time.Hour, nil
}

func (s *MediaService) deleteBlobBestEffort(ctx context.Context, storageKey string) {
	if err := s.storage.DeleteObject(ctx, storageKey); err != nil {
		// blob подберёт retention-политика хранилища, но молча не глотаем
		log.Printf("[MediaService] не удалось удалить blob %s: %v", storageKey, err)
	}
}

func validateIngestParams(params *ports.IngestParams) error {
	if len(params.Data) == 0 {
		return fmt.Errorf("%w: пустой файл", ErrValidation)
	}
	if params.FileName == "" {
		return fmt.Errorf("%w: имя файла обязательно", ErrValidation)
	}
	if params.ContentType == "" {
		return fmt.Errorf("%w: content type обязателен", ErrValidation)
	}
	if len(params.ThemeOptions) > 0 && !json.Valid(params.ThemeOptions) {
		return fmt.Errorf("%w: theme_options должны быть валидным JSON", ErrValidation)
	}
	return nil
}
