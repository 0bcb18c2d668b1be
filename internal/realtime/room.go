package realtime

import (
	"fmt"
	"log"
	"sync"
)

// RoomKey идентифицирует канал рассылки одного файла в проекте.
type RoomKey struct {
	ProjectID int64
	FileID    int64
}

// String возвращает имя группы в формате, совместимом с адресацией
// внешней шины: project_<id>_file_<id>.
func (k RoomKey) String() string {
	return fmt.Sprintf("project_%d_file_%d", k.ProjectID, k.FileID)
}

// Subscriber - получатель сообщений комнаты. Send обязан быть неблокирующим:
// Publish вызывает его под блокировкой реестра.
type Subscriber interface {
	ID() string
	Send(message []byte)
}

// RoomRegistry отслеживает, какие подписчики состоят в каких комнатах,
// и рассылает сообщения. Контракт намеренно не раскрывает, работает реестр
// внутри процесса или поверх внешней шины pub/sub.
//
// Гарантии доставки:
//   - Publish доставляет сообщение всем подписчикам, состоящим в комнате
//     на момент вызова; подписчик, входящий одновременно с Publish, может
//     сообщение не получить - атомарности между Join и Publish нет.
//   - Все подписчики комнаты наблюдают ее сообщения в одном и том же
//     относительном порядке. Между разными комнатами порядок не определен.
//
// Join и Leave идемпотентны: повторный вход и выход отсутствующего
// подписчика - не ошибка.
type RoomRegistry interface {
	Join(key RoomKey, sub Subscriber)
	Leave(key RoomKey, subID string)
	// Publish рассылает сообщение подписчикам комнаты. Подписчик с ID,
	// равным excludeID, пропускается; пустой excludeID означает "всем".
	Publish(key RoomKey, message []byte, excludeID string)
}

// InProcessRegistry - реализация RoomRegistry для развертывания в одном
// процессе: таблица членства под мьютексом. Порядок в пределах комнаты
// обеспечивается тем, что Publish раскладывает сообщение по очередям
// подписчиков, не отпуская блокировку.
type InProcessRegistry struct {
	mu    sync.Mutex
	rooms map[RoomKey]map[string]Subscriber
}

var _ RoomRegistry = (*InProcessRegistry)(nil)

// NewInProcessRegistry создает пустой реестр комнат.
func NewInProcessRegistry() *InProcessRegistry {
	return &InProcessRegistry{
		rooms: make(map[RoomKey]map[string]Subscriber),
	}
}

// Join добавляет подписчика в комнату.
func (r *InProcessRegistry) Join(key RoomKey, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[key]
	if !ok {
		room = make(map[string]Subscriber)
		r.rooms[key] = room
	}
	if _, ok = room[sub.ID()]; ok {
		return // Повторный вход - no-op
	}
	room[sub.ID()] = sub
	log.Printf("[RoomRegistry] Подписчик %s вошел в комнату %s (всего: %d)", sub.ID(), key, len(room))
}

// Leave удаляет подписчика из комнаты. Пустые комнаты удаляются из таблицы.
func (r *InProcessRegistry) Leave(key RoomKey, subID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[key]
	if !ok {
		return
	}
	if _, ok = room[subID]; !ok {
		return // Выход отсутствующего подписчика - no-op
	}
	delete(room, subID)
	if len(room) == 0 {
		delete(r.rooms, key)
	}
	log.Printf("[RoomRegistry] Подписчик %s покинул комнату %s (осталось: %d)", subID, key, len(room))
}

// Publish рассылает сообщение всем текущим подписчикам комнаты, кроме excludeID.
func (r *InProcessRegistry) Publish(key RoomKey, message []byte, excludeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, sub := range r.rooms[key] {
		if id == excludeID {
			continue
		}
		sub.Send(message)
	}
}

// MemberCount возвращает количество подписчиков комнаты.
func (r *InProcessRegistry) MemberCount(key RoomKey) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms[key])
}
