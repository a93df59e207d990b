package domain

// Customer представляет собой хранимую модель клиента. Идентификатор и
// временные метки (миллисекунды Unix) назначаются слоем хранения.
type Customer struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	IsActive bool   `json:"isActive"`
	Created  int64  `json:"created"`
	Updated  int64  `json:"updated"`
}

// CustomerCreateRequest представляет запрос на создание клиента.
// Phone — указатель, чтобы отличать отсутствующее поле от пустой строки:
// отсутствующий или null телефон валиден, пустая строка — нет.
type CustomerCreateRequest struct {
	FullName string  `json:"fullName" binding:"required,min=2,max=50"`
	Email    string  `json:"email" binding:"required,email,min=2,max=100"`
	Phone    *string `json:"phone" binding:"omitempty,phone"`
}

// CustomerUpdateRequest представляет запрос на обновление клиента.
// Поле ID принимается для совместимости с клиентами, но не сверяется с
// идентификатором из пути запроса. Email при обновлении игнорируется.
// Отсутствующий phone оставляет сохраненное значение без изменений.
type CustomerUpdateRequest struct {
	ID       int64   `json:"id" binding:"required"`
	FullName string  `json:"fullName" binding:"required,min=2,max=50"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone" binding:"omitempty,phone"`
}

// CustomerResponse представляет клиента в ответе API.
// Временные метки и флаг активности наружу не отдаются.
type CustomerResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

// ErrorResponse представляет тело ответа об ошибке. ID — случайный
// корреляционный токен для поиска деталей в логах сервера.
type ErrorResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
