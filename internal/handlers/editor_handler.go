package handlers

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"codecollabhub/internal/middleware"
	"codecollabhub/internal/realtime"
)

// Время на доставку кадра закрытия клиенту.
const closeWriteTimeout = 5 * time.Second

// EditorHandler поднимает websocket-подключения к совместному редактору
// и передает их в realtime.EditorSession.
type EditorHandler struct {
	upgrader  websocket.Upgrader
	jwtSecret string
	gate      realtime.Gatekeeper
	registry  realtime.RoomRegistry
	versions  realtime.VersionStore
}

// NewEditorHandler создает новый экземпляр EditorHandler.
func NewEditorHandler(
	jwtSecret string,
	gate realtime.Gatekeeper,
	registry realtime.RoomRegistry,
	versions realtime.VersionStore,
) *EditorHandler {
	return &EditorHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			// Проверка источника выполняется на уровне CORS-прокси;
			// доступ к комнате в любом случае требует валидного JWT.
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
		jwtSecret: jwtSecret,
		gate:      gate,
		registry:  registry,
		versions:  versions,
	}
}

// Serve обрабатывает GET запрос на подключение к комнате редактирования.
// Маршрут не закрыт HTTP-middleware аутентификации намеренно: анонимный
// клиент должен получить websocket-статус 4001 после рукопожатия, а не
// HTTP 401 до него.
func (h *EditorHandler) Serve(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectID")
	if err != nil {
		http.Error(w, "Неверный идентификатор проекта", http.StatusBadRequest)
		return
	}
	fileID, err := pathID(r, "fileID")
	if err != nil {
		http.Error(w, "Неверный идентификатор файла", http.StatusBadRequest)
		return
	}

	// Личность определяем до апгрейда, но отказ доставляем уже по
	// websocket: claims остаются nil для анонимного клиента.
	claims, err := middleware.ParseIdentity(r, h.jwtSecret)
	if err != nil && !errors.Is(err, middleware.ErrNoToken) {
		log.Printf("[EditorHandler] Невалидный токен при подключении к файлу %d: %v", fileID, err)
		claims = nil
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам пишет HTTP-ответ об ошибке.
		log.Printf("[EditorHandler] Ошибка апгрейда соединения: %v", err)
		return
	}

	var userID int64
	var username string
	if claims != nil {
		userID = claims.UserID
		username = claims.Username
	}

	session := realtime.NewEditorSession(
		newWSConn(conn),
		userID,
		username,
		realtime.RoomKey{ProjectID: projectID, FileID: fileID},
		h.gate,
		h.registry,
		h.versions,
	)
	session.Run(r.Context())
}

// wsConn адаптирует *websocket.Conn под транспортный интерфейс сессии.
type wsConn struct {
	conn *websocket.Conn

	mu        sync.Mutex // Защищает конкурентную запись (writePump и Close)
	closeOnce sync.Once
}

func newWSConn(conn *websocket.Conn) *wsConn {
	return &wsConn{conn: conn}
}

// ReadMessage блокируется до следующего текстового кадра.
func (c *wsConn) ReadMessage() ([]byte, error) {
	_, data, err := c.conn.ReadMessage()
	return data, err
}

// WriteMessage отправляет текстовый кадр.
func (c *wsConn) WriteMessage(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Close отправляет кадр закрытия с кодом и причиной, затем закрывает
// соединение. Повторные вызовы безвредны.
func (c *wsConn) Close(code int, reason string) error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		writeErr := c.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(code, reason),
			time.Now().Add(closeWriteTimeout),
		)
		c.mu.Unlock()

		closeErr := c.conn.Close()
		if writeErr != nil {
			err = writeErr
			return
		}
		err = closeErr
	})
	return err
}
