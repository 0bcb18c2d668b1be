package realtime_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codecollabhub/internal/models"
	"codecollabhub/internal/realtime"
)

// fakeConn - скриптуемый транспорт: входящие кадры подаются через канал,
// исходящие и параметры закрытия записываются для проверок.
type fakeConn struct {
	incoming chan []byte
	done     chan struct{}

	mu          sync.Mutex
	written     [][]byte
	closed      bool
	closeCode   int
	closeReason string
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan []byte, 16),
		done:     make(chan struct{}),
	}
}

func (c *fakeConn) ReadMessage() ([]byte, error) {
	select {
	case msg, ok := <-c.incoming:
		if !ok {
			return nil, io.EOF
		}
		return msg, nil
	case <-c.done:
		return nil, io.EOF
	}
}

func (c *fakeConn) WriteMessage(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.written = append(c.written, data)
	return nil
}

func (c *fakeConn) Close(code int, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	c.closeCode = code
	c.closeReason = reason
	close(c.done)
	return nil
}

// disconnect имитирует закрытие соединения клиентом.
func (c *fakeConn) disconnect() {
	close(c.incoming)
}

func (c *fakeConn) writtenMessages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.written))
	for i, m := range c.written {
		out[i] = string(m)
	}
	return out
}

func (c *fakeConn) closeState() (bool, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed, c.closeCode
}

// fakeGate разрешает или запрещает доступ по списку пользователей.
type fakeGate struct {
	allowed map[int64]bool
}

func (g *fakeGate) CheckAccess(_ context.Context, userID, _ int64) error {
	if g.allowed[userID] {
		return nil
	}
	return errors.New("доступ запрещен")
}

// fakeVersions записывает обращения к журналу версий.
type fakeVersions struct {
	mu      sync.Mutex
	err     error
	appends []string
	nextNum int
}

func (v *fakeVersions) Append(_ context.Context, fileID, userID int64, content string) (*models.FileVersion, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.err != nil {
		return nil, v.err
	}
	v.appends = append(v.appends, content)
	v.nextNum++
	return &models.FileVersion{
		FileID:        fileID,
		CreatorID:     userID,
		Content:       content,
		VersionNumber: v.nextNum,
	}, nil
}

func (v *fakeVersions) appended() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.appends...)
}

const waitTimeout = 2 * time.Second

// runSession запускает сессию и возвращает канал ее завершения.
func runSession(s *realtime.EditorSession) <-chan struct{} {
	finished := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(finished)
	}()
	return finished
}

func waitFinished(t *testing.T, finished <-chan struct{}) {
	t.Helper()
	select {
	case <-finished:
	case <-time.After(waitTimeout):
		t.Fatal("сессия не завершилась за отведенное время")
	}
}

func TestEditorSession_AnonymousRejected(t *testing.T) {
	conn := newFakeConn()
	registry := realtime.NewInProcessRegistry()
	key := realtime.RoomKey{ProjectID: 1, FileID: 2}

	session := realtime.NewEditorSession(conn, 0, "", key, &fakeGate{}, registry, &fakeVersions{})
	waitFinished(t, runSession(session))

	closed, code := conn.closeState()
	assert.True(t, closed)
	assert.Equal(t, realtime.CloseAuthRequired, code)
	assert.Equal(t, realtime.StateRejected, session.State())
	// В комнату сессия не входила и ничего не рассылала
	assert.Equal(t, 0, registry.MemberCount(key))
	assert.Empty(t, conn.writtenMessages())
}

func TestEditorSession_AccessDenied(t *testing.T) {
	conn := newFakeConn()
	registry := realtime.NewInProcessRegistry()
	key := realtime.RoomKey{ProjectID: 1, FileID: 2}
	observer := newRecordingSubscriber("observer")
	registry.Join(key, observer)

	gate := &fakeGate{allowed: map[int64]bool{}}
	session := realtime.NewEditorSession(conn, 42, "alice", key, gate, registry, &fakeVersions{})
	waitFinished(t, runSession(session))

	closed, code := conn.closeState()
	assert.True(t, closed)
	assert.Equal(t, realtime.CloseAccessDenied, code)
	assert.Equal(t, realtime.StateRejected, session.State())
	// Отклоненная сессия не оставляет следов в комнате
	assert.Equal(t, 1, registry.MemberCount(key))
	assert.Empty(t, observer.messages())
}

func TestEditorSession_Lifecycle(t *testing.T) {
	conn := newFakeConn()
	registry := realtime.NewInProcessRegistry()
	key := realtime.RoomKey{ProjectID: 1, FileID: 2}
	observer := newRecordingSubscriber("observer")
	registry.Join(key, observer)

	gate := &fakeGate{allowed: map[int64]bool{42: true}}
	versions := &fakeVersions{}
	session := realtime.NewEditorSession(conn, 42, "alice", key, gate, registry, versions)
	finished := runSession(session)

	// Вход: уведомление уходит всем, включая самого входящего
	require.Eventually(t, func() bool {
		return len(observer.messages()) == 1
	}, waitTimeout, 10*time.Millisecond)
	assert.JSONEq(t, `{"type":"user_joined","username":"alice"}`, observer.messages()[0])
	require.Eventually(t, func() bool {
		return len(conn.writtenMessages()) == 1
	}, waitTimeout, 10*time.Millisecond)
	assert.JSONEq(t, `{"type":"user_joined","username":"alice"}`, conn.writtenMessages()[0])
	assert.Equal(t, realtime.StateConnected, session.State())
	assert.Equal(t, 2, registry.MemberCount(key))

	// Обновление кода: сначала сохранение, затем рассылка без отправителя
	conn.incoming <- []byte(`{"type":"code_update","content":"x := 1"}`)
	require.Eventually(t, func() bool {
		return len(observer.messages()) == 2
	}, waitTimeout, 10*time.Millisecond)
	assert.Equal(t, []string{"x := 1"}, versions.appended())
	assert.JSONEq(t, `{"type":"code_update","content":"x := 1","user":"alice"}`, observer.messages()[1])
	// Отправитель собственное обновление обратно не получает
	assert.Len(t, conn.writtenMessages(), 1)

	// Курсор: ретрансляция без сохранения
	conn.incoming <- []byte(`{"type":"cursor_update","position":{"line":3}}`)
	require.Eventually(t, func() bool {
		return len(observer.messages()) == 3
	}, waitTimeout, 10*time.Millisecond)
	assert.JSONEq(t, `{"type":"cursor_update","position":{"line":3},"user":"alice"}`, observer.messages()[2])
	assert.Equal(t, []string{"x := 1"}, versions.appended())

	// Отключение клиента: ровно одно user_left оставшимся участникам
	conn.disconnect()
	waitFinished(t, finished)

	require.Eventually(t, func() bool {
		return len(observer.messages()) == 4
	}, waitTimeout, 10*time.Millisecond)
	assert.JSONEq(t, `{"type":"user_left","username":"alice"}`, observer.messages()[3])
	assert.Equal(t, realtime.StateDisconnected, session.State())
	assert.Equal(t, 1, registry.MemberCount(key))

	closed, code := conn.closeState()
	assert.True(t, closed)
	assert.Equal(t, realtime.CloseNormal, code)
}

func TestEditorSession_InvalidFrameKeepsSessionAlive(t *testing.T) {
	conn := newFakeConn()
	registry := realtime.NewInProcessRegistry()
	key := realtime.RoomKey{ProjectID: 1, FileID: 2}
	observer := newRecordingSubscriber("observer")
	registry.Join(key, observer)

	gate := &fakeGate{allowed: map[int64]bool{42: true}}
	versions := &fakeVersions{}
	session := realtime.NewEditorSession(conn, 42, "alice", key, gate, registry, versions)
	finished := runSession(session)

	// Некорректный кадр: отправитель получает error, остальные ничего
	conn.incoming <- []byte(`{"type":"selection_update"}`)
	require.Eventually(t, func() bool {
		return len(conn.writtenMessages()) == 2 // user_joined + error
	}, waitTimeout, 10*time.Millisecond)
	assert.JSONEq(t, `{"type":"error","message":"Ошибка обработки сообщения"}`, conn.writtenMessages()[1])
	assert.Len(t, observer.messages(), 1) // Только user_joined

	// Сессия жива и обрабатывает следующий корректный кадр
	conn.incoming <- []byte(`{"type":"code_update","content":"после ошибки"}`)
	require.Eventually(t, func() bool {
		return len(observer.messages()) == 2
	}, waitTimeout, 10*time.Millisecond)
	assert.Equal(t, []string{"после ошибки"}, versions.appended())

	conn.disconnect()
	waitFinished(t, finished)
}

func TestEditorSession_AppendFailureNotBroadcast(t *testing.T) {
	conn := newFakeConn()
	registry := realtime.NewInProcessRegistry()
	key := realtime.RoomKey{ProjectID: 1, FileID: 2}
	observer := newRecordingSubscriber("observer")
	registry.Join(key, observer)

	gate := &fakeGate{allowed: map[int64]bool{42: true}}
	versions := &fakeVersions{err: errors.New("хранилище недоступно")}
	session := realtime.NewEditorSession(conn, 42, "alice", key, gate, registry, versions)
	finished := runSession(session)

	conn.incoming <- []byte(`{"type":"code_update","content":"пропадет"}`)
	require.Eventually(t, func() bool {
		return len(conn.writtenMessages()) == 2 // user_joined + error
	}, waitTimeout, 10*time.Millisecond)
	assert.Contains(t, conn.writtenMessages()[1], `"error"`)
	// Несохраненное содержимое не уходит остальным участникам
	assert.Len(t, observer.messages(), 1)

	conn.disconnect()
	waitFinished(t, finished)
}

func TestEditorSession_FinishIdempotent(t *testing.T) {
	conn := newFakeConn()
	registry := realtime.NewInProcessRegistry()
	key := realtime.RoomKey{ProjectID: 1, FileID: 2}
	observer := newRecordingSubscriber("observer")
	registry.Join(key, observer)

	gate := &fakeGate{allowed: map[int64]bool{42: true}}
	session := realtime.NewEditorSession(conn, 42, "alice", key, gate, registry, &fakeVersions{})
	finished := runSession(session)

	require.Eventually(t, func() bool {
		return registry.MemberCount(key) == 2
	}, waitTimeout, 10*time.Millisecond)

	conn.disconnect()
	waitFinished(t, finished)

	// user_joined + ровно одно user_left, сколько бы раз ни завершалась уборка
	require.Eventually(t, func() bool {
		return len(observer.messages()) == 2
	}, waitTimeout, 10*time.Millisecond)
	left := 0
	for _, m := range observer.messages() {
		if m == `{"type":"user_left","username":"alice"}` {
			left++
		}
	}
	assert.Equal(t, 1, left)
}
