package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/warehouse/internal/authctx"
	"github.com/shestoi/GoBigTech/warehouse/internal/repository"
	"github.com/shestoi/GoBigTech/warehouse/internal/service"
	"github.com/shestoi/GoBigTech/warehouse/platform/observability"
)

// Handler содержит HTTP-обработчики для Warehouse Service
// Зависит от service слоя, но не знает о деталях реализации (MongoDB, Kafka и т.д.)
type Handler struct {
	inventoryService *service.InventoryService
	tagService       *service.TagService
	logger           *zap.Logger
}

// NewHandler создаёт новый HTTP handler
func NewHandler(inventoryService *service.InventoryService, tagService *service.TagService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		inventoryService: inventoryService,
		tagService:       tagService,
		logger:           logger,
	}
}

// Ping обрабатывает GET /ping
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("pong!~"))
}

// ListTags обрабатывает GET /storage/tags/list - различные теги, потоком
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	writeJSONStream(w, h.log(r), h.tagService.ListTags(r.Context(), userID), func(tag string) string { return tag })
}

// ListItems обрабатывает GET /storage/list?showEmpty= - позиции пользователя, потоком
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	filter := repository.ListFilter{
		Owner:        userID,
		IncludeEmpty: parseShowEmpty(r),
	}
	writeJSONStream(w, h.log(r), h.inventoryService.List(r.Context(), filter), toItemResponse)
}

// GetItem обрабатывает GET /storage/{id}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	item, err := h.inventoryService.GetByIDForOwner(r.Context(), id, userID)
	if err != nil {
		writeError(w, h.log(r), err)
		return
	}

	writeJSON(w, h.log(r), http.StatusOK, toItemResponse(item))
}

// DeleteItem обрабатывает DELETE /storage/{id}
// Отвечает true, если позиция удалена, и false, если остаток положительный
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	deleted, err := h.inventoryService.DeleteByIDForOwner(r.Context(), id, userID)
	if err != nil {
		writeError(w, h.log(r), err)
		return
	}

	writeJSON(w, h.log(r), http.StatusOK, deleted)
}

// UpdateQuantity обрабатывает PUT /storage/{id}?quantity=N
func (h *Handler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	raw := r.URL.Query().Get("quantity")
	quantity, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, h.log(r), fmt.Errorf("%w: quantity must be an integer, got %q", service.ErrInvalidInput, raw))
		return
	}

	if err := h.inventoryService.UpdateQuantity(r.Context(), id, quantity, userID); err != nil {
		writeError(w, h.log(r), err)
		return
	}

	writeJSON(w, h.log(r), http.StatusOK, "Success")
}

// CreateItem обрабатывает POST /storage/ - создание позиции
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var reqBody CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		writeError(w, h.log(r), fmt.Errorf("%w: invalid JSON: %v", service.ErrInvalidInput, err))
		return
	}
	if reqBody.Name == nil || reqBody.Quantity == nil {
		writeError(w, h.log(r), fmt.Errorf("%w: name and quantity are required", service.ErrInvalidInput))
		return
	}

	created, err := h.inventoryService.Add(r.Context(), service.AddItemInput{
		Name:     *reqBody.Name,
		Quantity: *reqBody.Quantity,
		Tags:     reqBody.Tags,
	}, userID)
	if err != nil {
		writeError(w, h.log(r), err)
		return
	}

	writeJSON(w, h.log(r), http.StatusOK, toItemResponse(created))
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := authctx.UserIDFromContext(r.Context())
	if !ok || userID == "" {
		http.Error(w, "Missing user header", http.StatusBadRequest)
		return "", false
	}
	return userID, true
}

// log возвращает logger запроса с trace_id, если его положил observability middleware
func (h *Handler) log(r *http.Request) *zap.Logger {
	if l := observability.LoggerFromContext(r.Context()); l != nil {
		return l
	}
	return h.logger
}

// parseShowEmpty: отсутствие параметра - nil, "true" в любом регистре - true, всё остальное - false
func parseShowEmpty(r *http.Request) *bool {
	values, present := r.URL.Query()["showEmpty"]
	if !present || len(values) == 0 {
		return nil
	}
	showEmpty := strings.EqualFold(values[0], "true")
	return &showEmpty
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("failed to encode response", zap.Error(err))
	}
}

// writeError переводит ошибку service слоя в HTTP статус
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := http.StatusServiceUnavailable
	errorType := "StoreUnavailable"
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		errorType = "NotFound"
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
		errorType = "InvalidInput"
	default:
		logger.Error("request failed", zap.Error(err))
	}

	writeJSON(w, logger, status, ExceptionInfo{
		Message:   err.Error(),
		ErrorType: errorType,
	})
}

// writeJSONStream пишет последовательность как JSON массив по мере чтения
// Ошибка до первого элемента превращается в обычный ответ с ошибкой,
// ошибка после начала записи обрывает массив и только логируется
func writeJSONStream[T, R any](w http.ResponseWriter, logger *zap.Logger, seq iter.Seq2[T, error], convert func(T) R) {
	enc := json.NewEncoder(w)
	flusher, _ := w.(http.Flusher)
	started := false

	for v, err := range seq {
		if err != nil {
			if !started {
				writeError(w, logger, err)
				return
			}
			logger.Error("stream aborted", zap.Error(err))
			return
		}

		if !started {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("["))
			started = true
		} else {
			_, _ = w.Write([]byte(","))
		}
		if err := enc.Encode(convert(v)); err != nil {
			// клиент ушёл: прекращаем чтение, курсор закроется при выходе из range
			logger.Warn("failed to encode stream element", zap.Error(err))
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	if !started {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("["))
	}
	_, _ = w.Write([]byte("]"))
}
