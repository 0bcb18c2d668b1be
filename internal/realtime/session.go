package realtime

import (
	"context"
	"log"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"codecollabhub/internal/models"
)

// Статусы закрытия websocket-соединения.
const (
	CloseNormal        = 1000 // Штатное закрытие
	CloseInternalError = 1011 // Непредвиденная ошибка сервера
	CloseAuthRequired  = 4001 // Требуется аутентификация
	CloseAccessDenied  = 4003 // Доступ запрещен
)

// Размер очереди исходящих сообщений одной сессии.
const sendQueueSize = 256

// State - состояние жизненного цикла сессии редактора.
type State int32

const (
	StateConnecting State = iota
	StateAuthorized
	StateConnected
	StateDisconnected // Терминальное
	StateRejected     // Терминальное
)

// Conn абстрагирует транспорт сессии. Реализуется адаптером поверх
// websocket-соединения; в тестах подменяется заглушкой.
type Conn interface {
	// ReadMessage блокируется до следующего входящего кадра.
	// Ошибка означает закрытие транспорта.
	ReadMessage() ([]byte, error)
	WriteMessage(data []byte) error
	// Close закрывает соединение с указанным статусом. Повторные вызовы безвредны.
	Close(code int, reason string) error
}

// Gatekeeper решает, пускать ли пользователя в проект.
type Gatekeeper interface {
	CheckAccess(ctx context.Context, userID, projectID int64) error
}

// VersionStore - то, что нужно сессии от журнала версий: записать новый
// снимок и получить присвоенный номер.
type VersionStore interface {
	Append(ctx context.Context, fileID, userID int64, content string) (*models.FileVersion, error)
}

// EditorSession владеет жизненным циклом одного подключения к редактору:
// авторизация, вход в комнату, обработка входящих кадров, выход из комнаты.
//
// Состояния: Connecting → Authorized → Connected → Disconnected,
// либо Connecting → Rejected при отказе в авторизации.
//
// Все состояние сессии, кроме таблицы членства комнат и счетчиков версий,
// принадлежит единственной горутине сессии.
type EditorSession struct {
	id       string
	conn     Conn
	userID   int64 // 0 - анонимное подключение
	username string
	key      RoomKey

	gate     Gatekeeper
	registry RoomRegistry
	versions VersionStore

	state      atomic.Int32
	joined     bool
	send       chan []byte
	finishOnce sync.Once
}

// NewEditorSession создает сессию для подключения. userID == 0 означает
// анонимного клиента: такая сессия будет отклонена при запуске.
func NewEditorSession(
	conn Conn,
	userID int64,
	username string,
	key RoomKey,
	gate Gatekeeper,
	registry RoomRegistry,
	versions VersionStore,
) *EditorSession {
	return &EditorSession{
		id:       uuid.NewString(),
		conn:     conn,
		userID:   userID,
		username: username,
		key:      key,
		gate:     gate,
		registry: registry,
		versions: versions,
		send:     make(chan []byte, sendQueueSize),
	}
}

// ID возвращает идентификатор сессии (реализация Subscriber).
func (s *EditorSession) ID() string { return s.id }

// State возвращает текущее состояние сессии.
func (s *EditorSession) State() State { return State(s.state.Load()) }

func (s *EditorSession) setState(state State) { s.state.Store(int32(state)) }

// Send ставит сообщение в очередь отправки (реализация Subscriber).
// Вызывается реестром под его блокировкой, поэтому не блокируется:
// при переполненной очереди соединение закрывается как безнадежно отставшее.
func (s *EditorSession) Send(message []byte) {
	select {
	case s.send <- message:
	default:
		log.Printf("[EditorSession] Очередь отправки сессии %s переполнена, соединение будет закрыто", s.id)
		go func() { _ = s.conn.Close(CloseInternalError, "очередь отправки переполнена") }()
	}
}

// Run выполняет весь жизненный цикл сессии и возвращает управление после
// ее завершения. Закрытие транспорта клиентом прерывает только ожидание
// следующего кадра; уже запущенная запись версии доводится до конца
// слоем хранения.
func (s *EditorSession) Run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			// Непредвиденная ошибка оркестратора: логируем и закрываем
			// с внутренним статусом. Уборка комнаты все равно выполняется.
			log.Printf("[EditorSession] Непредвиденная ошибка в сессии %s: %v", s.id, r)
			_ = s.conn.Close(CloseInternalError, "внутренняя ошибка сервера")
			s.finish()
		}
	}()

	// Connecting → Rejected: анонимное подключение.
	if s.userID == 0 {
		s.reject(CloseAuthRequired, "требуется аутентификация")
		return
	}

	// Connecting → Rejected: нет доступа к проекту (или проект не существует -
	// для клиента это неразличимо, см. Gatekeeper).
	if err := s.gate.CheckAccess(ctx, s.userID, s.key.ProjectID); err != nil {
		log.Printf("[EditorSession] Пользователю %d отказано в доступе к комнате %s: %v",
			s.userID, s.key, err)
		s.reject(CloseAccessDenied, "доступ запрещен")
		return
	}
	s.setState(StateAuthorized)

	// Authorized → Connected: вход в комнату и уведомление участников.
	// Рассылается всем, включая самого входящего.
	s.registry.Join(s.key, s)
	s.joined = true
	s.publish(NewUserJoined(s.username), "")
	s.setState(StateConnected)
	log.Printf("[EditorSession] Пользователь '%s' подключился к комнате %s (сессия %s)",
		s.username, s.key, s.id)

	go s.writePump()
	s.readLoop(ctx)

	// Connected → Disconnected.
	s.finish()
}

// reject закрывает соединение без входа в комнату и без рассылок.
func (s *EditorSession) reject(code int, reason string) {
	s.setState(StateRejected)
	log.Printf("[EditorSession] Сессия %s отклонена: %s (статус %d)", s.id, reason, code)
	_ = s.conn.Close(code, reason)
}

// finish выполняет идемпотентную уборку: выход из комнаты, уведомление
// оставшихся участников, остановку писателя и закрытие транспорта.
func (s *EditorSession) finish() {
	s.finishOnce.Do(func() {
		if s.joined {
			// Сначала Leave, затем публикация: после Leave реестр
			// гарантированно не доставит этой сессии ни одного сообщения.
			s.registry.Leave(s.key, s.id)
			s.publish(NewUserLeft(s.username), s.id)
			log.Printf("[EditorSession] Пользователь '%s' покинул комнату %s (сессия %s)",
				s.username, s.key, s.id)
		}
		s.setState(StateDisconnected)
		close(s.send)
		_ = s.conn.Close(CloseNormal, "")
	})
}

// readLoop читает входящие кадры до закрытия транспорта.
func (s *EditorSession) readLoop(ctx context.Context) {
	for {
		data, err := s.conn.ReadMessage()
		if err != nil {
			log.Printf("[EditorSession] Сессия %s: чтение завершено: %v", s.id, err)
			return
		}
		s.handleFrame(ctx, data)
	}
}

// handleFrame обрабатывает один входящий кадр. Протокольные ошибки и ошибки
// сохранения локальны для кадра: отправитель получает error, сессия живет.
func (s *EditorSession) handleFrame(ctx context.Context, data []byte) {
	msg, err := DecodeInbound(data)
	if err != nil {
		log.Printf("[EditorSession] Протокольная ошибка в сессии %s: %v", s.id, err)
		s.sendToSelf(NewErrorMessage("Ошибка обработки сообщения"))
		return
	}

	switch m := msg.(type) {
	case CodeUpdate:
		// Сначала долговременное сохранение, и только потом рассылка:
		// остальные участники никогда не видят содержимое, которое
		// не было сохранено.
		version, appendErr := s.versions.Append(ctx, s.key.FileID, s.userID, m.Content)
		if appendErr != nil {
			log.Printf("[EditorSession] Ошибка сохранения версии в сессии %s: %v", s.id, appendErr)
			s.sendToSelf(NewErrorMessage("Не удалось сохранить изменения, попробуйте еще раз"))
			return
		}
		log.Printf("[EditorSession] Файл %d: версия %d сохранена пользователем '%s'",
			s.key.FileID, version.VersionNumber, s.username)
		s.publish(NewCodeUpdate(m.Content, s.username), s.id)

	case CursorUpdate:
		// Позиции курсора не сохраняются, только ретранслируются.
		s.publish(NewCursorUpdate(m.Position, s.username), s.id)
	}
}

// publish кодирует и рассылает сообщение через реестр комнат.
func (s *EditorSession) publish(msg Outbound, excludeID string) {
	data, err := msg.Encode()
	if err != nil {
		log.Printf("[EditorSession] Ошибка кодирования сообщения в сессии %s: %v", s.id, err)
		return
	}
	s.registry.Publish(s.key, data, excludeID)
}

// sendToSelf кодирует и ставит сообщение в очередь только этой сессии.
func (s *EditorSession) sendToSelf(msg Outbound) {
	data, err := msg.Encode()
	if err != nil {
		log.Printf("[EditorSession] Ошибка кодирования сообщения в сессии %s: %v", s.id, err)
		return
	}
	s.Send(data)
}

// writePump последовательно пишет сообщения из очереди в транспорт.
// Завершается после закрытия очереди в finish.
func (s *EditorSession) writePump() {
	for msg := range s.send {
		if err := s.conn.WriteMessage(msg); err != nil {
			log.Printf("[EditorSession] Сессия %s: ошибка записи, дочитываем очередь: %v", s.id, err)
			for range s.send { //nolint:revive // опустошаем очередь до закрытия
			}
			return
		}
	}
}
