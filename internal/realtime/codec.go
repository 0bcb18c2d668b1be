package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Типы сообщений протокола редактора.
const (
	TypeCodeUpdate   = "code_update"
	TypeCursorUpdate = "cursor_update"
	TypeUserJoined   = "user_joined"
	TypeUserLeft     = "user_left"
	TypeError        = "error"
)

// ErrProtocol возвращается кодеком для кадра, который не прошел структурную
// валидацию: неизвестный тип, отсутствующие или неверно типизированные поля.
// Протокольная ошибка локальна для одного сообщения и не закрывает соединение.
var ErrProtocol = errors.New("некорректный кадр протокола")

// Inbound - закрытое множество входящих сообщений редактора.
// Новые виды сообщений добавляются только здесь и в DecodeInbound.
type Inbound interface {
	isInbound()
}

// CodeUpdate - входящее обновление содержимого файла целиком.
type CodeUpdate struct {
	Content string
}

// CursorUpdate - входящее обновление позиции курсора.
// Позиция для сервера непрозрачна и ретранслируется как есть.
type CursorUpdate struct {
	Position json.RawMessage
}

func (CodeUpdate) isInbound()   {}
func (CursorUpdate) isInbound() {}

// inboundFrame - промежуточная форма для валидации входящего кадра.
// Указатели различают отсутствующее поле и пустое значение.
type inboundFrame struct {
	Type     string          `json:"type"`
	Content  *string         `json:"content"`
	Position json.RawMessage `json:"position"`
}

// DecodeInbound разбирает и валидирует входящий кадр.
func DecodeInbound(data []byte) (Inbound, error) {
	var frame inboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProtocol, err)
	}

	switch frame.Type {
	case TypeCodeUpdate:
		if frame.Content == nil {
			return nil, fmt.Errorf("%w: в code_update отсутствует поле content", ErrProtocol)
		}
		return CodeUpdate{Content: *frame.Content}, nil
	case TypeCursorUpdate:
		if len(frame.Position) == 0 || string(frame.Position) == "null" {
			return nil, fmt.Errorf("%w: в cursor_update отсутствует поле position", ErrProtocol)
		}
		return CursorUpdate{Position: frame.Position}, nil
	default:
		return nil, fmt.Errorf("%w: неизвестный тип сообщения %q", ErrProtocol, frame.Type)
	}
}

// Outbound - исходящее сообщение редактора. Одна структура на все виды:
// omitempty оставляет в кадре только поля соответствующего типа.
type Outbound struct {
	Type     string          `json:"type"`
	Content  *string         `json:"content,omitempty"`
	Position json.RawMessage `json:"position,omitempty"`
	User     string          `json:"user,omitempty"`
	Username string          `json:"username,omitempty"`
	Message  string          `json:"message,omitempty"`
}

// Encode сериализует исходящее сообщение в JSON.
func (m Outbound) Encode() ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации исходящего сообщения: %w", err)
	}
	return data, nil
}

// NewCodeUpdate формирует исходящее обновление кода от имени пользователя.
func NewCodeUpdate(content, user string) Outbound {
	return Outbound{Type: TypeCodeUpdate, Content: &content, User: user}
}

// NewCursorUpdate формирует исходящее обновление курсора от имени пользователя.
func NewCursorUpdate(position json.RawMessage, user string) Outbound {
	return Outbound{Type: TypeCursorUpdate, Position: position, User: user}
}

// NewUserJoined формирует уведомление о подключении пользователя.
func NewUserJoined(username string) Outbound {
	return Outbound{Type: TypeUserJoined, Username: username}
}

// NewUserLeft формирует уведомление об отключении пользователя.
func NewUserLeft(username string) Outbound {
	return Outbound{Type: TypeUserLeft, Username: username}
}

// NewErrorMessage формирует сообщение об ошибке для отправителя.
func NewErrorMessage(message string) Outbound {
	return Outbound{Type: TypeError, Message: message}
}
