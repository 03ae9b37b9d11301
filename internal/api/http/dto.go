package httpapi

import "github.com/shestoi/GoBigTech/warehouse/internal/repository"

// CreateItemRequest представляет HTTP запрос на создание позиции
type CreateItemRequest struct {
	Name     *string  `json:"name"`
	Quantity *int     `json:"quantity"`
	Tags     []string `json:"tags"`
}

// ItemResponse представляет позицию в HTTP ответе
// Владельцы позиции наружу не отдаются
type ItemResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Tags     []string `json:"tags"`
}

// ExceptionInfo тело ответа с ошибкой
type ExceptionInfo struct {
	Message   string `json:"message"`
	ErrorType string `json:"errorType"`
}

func toItemResponse(item repository.Item) ItemResponse {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return ItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Quantity: item.Quantity,
		Tags:     tags,
	}
}
