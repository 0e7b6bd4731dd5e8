package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/vadimbarashkov/shortener/internal/entity"
	"github.com/vadimbarashkov/shortener/internal/keygen"
)

var ErrMaxRetriesExceeded = errors.New("maximum retries exceeded for generating key")

const defaultMaxRetries = 5

type urlRepository interface {
	Save(ctx context.Context, key, secretKey, targetURL string) (*entity.URL, error)
	RetrieveActiveByKey(ctx context.Context, key string) (*entity.URL, error)
	RetrieveBySecretKey(ctx context.Context, secretKey string) (*entity.URL, error)
	IncrementClicks(ctx context.Context, key string) (*entity.URL, error)
	ToggleActive(ctx context.Context, secretKey string) (*entity.URL, error)
	Remove(ctx context.Context, secretKey string) error
	RetrieveAll(ctx context.Context) ([]entity.URL, error)
}

type Option func(*URLUseCase)

func WithKeyLength(n int) Option {
	return func(uc *URLUseCase) {
		uc.keyLength = n
	}
}

func WithMaxRetries(n int) Option {
	return func(uc *URLUseCase) {
		uc.maxRetries = n
	}
}

type URLUseCase struct {
	keyLength  int
	maxRetries int
	urlRepo    urlRepository
}

func NewURLUseCase(urlRepo urlRepository, opts ...Option) *URLUseCase {
	uc := &URLUseCase{
		keyLength:  keygen.DefaultKeyLength,
		maxRetries: defaultMaxRetries,
		urlRepo:    urlRepo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// ShortenURL issues a fresh key and secret key for targetURL and stores them.
// Collisions reported by the storage layer are retried with new values
// until maxRetries attempts have been made.
func (uc *URLUseCase) ShortenURL(ctx context.Context, targetURL string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ShortenURL"

	for i := 0; i < uc.maxRetries; i++ {
		key, err := keygen.GenerateKey(uc.keyLength)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to generate key: %w", op, err)
		}

		url, err := uc.urlRepo.Save(ctx, key, keygen.GenerateSecret(), targetURL)
		if err != nil {
			if errors.Is(err, entity.ErrKeyExists) || errors.Is(err, entity.ErrSecretKeyExists) {
				continue
			}

			return nil, fmt.Errorf("%s: failed to shorten url: %w", op, err)
		}

		return url, nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrMaxRetriesExceeded)
}

// ResolveKey counts a visit to the active URL behind key and returns it.
func (uc *URLUseCase) ResolveKey(ctx context.Context, key string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ResolveKey"

	url, err := uc.urlRepo.IncrementClicks(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to resolve key: %w", op, err)
	}

	return url, nil
}

// GetActiveURL looks up the active URL behind key without counting a visit.
func (uc *URLUseCase) GetActiveURL(ctx context.Context, key string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetActiveURL"

	url, err := uc.urlRepo.RetrieveActiveByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get active url: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) GetURLInfo(ctx context.Context, secretKey string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.GetURLInfo"

	url, err := uc.urlRepo.RetrieveBySecretKey(ctx, secretKey)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to get url info: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) ToggleURL(ctx context.Context, secretKey string) (*entity.URL, error) {
	const op = "usecase.URLUseCase.ToggleURL"

	url, err := uc.urlRepo.ToggleActive(ctx, secretKey)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to toggle url: %w", op, err)
	}

	return url, nil
}

func (uc *URLUseCase) DeleteURL(ctx context.Context, secretKey string) error {
	const op = "usecase.URLUseCase.DeleteURL"

	if err := uc.urlRepo.Remove(ctx, secretKey); err != nil {
		return fmt.Errorf("%s: failed to delete url: %w", op, err)
	}

	return nil
}

func (uc *URLUseCase) ListURLs(ctx context.Context) ([]entity.URL, error) {
	const op = "usecase.URLUseCase.ListURLs"

	urls, err := uc.urlRepo.RetrieveAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to list urls: %w", op, err)
	}

	return urls, nil
}
