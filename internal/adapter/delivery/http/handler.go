package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortener/internal/entity"
)

const welcomeMessage = "Welcome to the URL Shortener app!"

func handleWelcome(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, welcomeMessage)
}

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type urlUseCase interface {
	ShortenURL(ctx context.Context, targetURL string) (*entity.URL, error)
	ResolveKey(ctx context.Context, key string) (*entity.URL, error)
	GetActiveURL(ctx context.Context, key string) (*entity.URL, error)
	GetURLInfo(ctx context.Context, secretKey string) (*entity.URL, error)
	ToggleURL(ctx context.Context, secretKey string) (*entity.URL, error)
	DeleteURL(ctx context.Context, secretKey string) error
	ListURLs(ctx context.Context) ([]entity.URL, error)
}

type urlHandler struct {
	useCase  urlUseCase
	validate *validator.Validate
}

func newURLHandler(useCase urlUseCase, validate *validator.Validate) *urlHandler {
	return &urlHandler{
		useCase:  useCase,
		validate: validate,
	}
}

// decode reads a JSON body into v and validates it, writing a 400 response on failure.
func (h *urlHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return false
	}

	if err := h.validate.Struct(v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return false
	}

	return true
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, entity.ErrURLNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, urlNotFoundResponse(r))
		return
	}

	httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, serverErrorResponse)
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	var req urlRequest

	if !h.decode(w, r, &req) {
		return
	}

	url, err := h.useCase.ShortenURL(r.Context(), req.TargetURL)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toCreateURLResponse(url))
}

func (h *urlHandler) listURLs(w http.ResponseWriter, r *http.Request) {
	urls, err := h.useCase.ListURLs(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLListResponse(urls))
}

func (h *urlHandler) redirect(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	url, err := h.useCase.ResolveKey(r.Context(), key)
	if err != nil {
		respondError(w, r, err)
		return
	}

	http.Redirect(w, r, url.TargetURL, http.StatusTemporaryRedirect)
}

// peek answers HEAD requests with the redirect target without counting a click.
func (h *urlHandler) peek(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	url, err := h.useCase.GetActiveURL(r.Context(), key)
	if err != nil {
		respondError(w, r, err)
		return
	}

	w.Header().Set("Location", url.TargetURL)
	w.WriteHeader(http.StatusTemporaryRedirect)
}

func (h *urlHandler) getURLInfo(w http.ResponseWriter, r *http.Request) {
	secretKey := chi.URLParam(r, "secretKey")

	url, err := h.useCase.GetURLInfo(r.Context(), secretKey)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toURLResponse(url))
}

func (h *urlHandler) toggleURL(w http.ResponseWriter, r *http.Request) {
	var req secretKeyRequest

	if !h.decode(w, r, &req) {
		return
	}

	url, err := h.useCase.ToggleURL(r.Context(), req.SecretKey)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, messageResponse{Message: url.StatusMessage()})
}

func (h *urlHandler) deleteURL(w http.ResponseWriter, r *http.Request) {
	var req secretKeyRequest

	if !h.decode(w, r, &req) {
		return
	}

	if err := h.useCase.DeleteURL(r.Context(), req.SecretKey); err != nil {
		respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, messageResponse{Message: "URL successfully deleted"})
}
