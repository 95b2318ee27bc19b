// internal/telemetry/server.go
package telemetry

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Snapshot — срез состояния симуляции для внешних наблюдателей
type Snapshot struct {
	GameTime    float64 `json:"gameTime"`
	BallCount   int     `json:"ballCount"`
	MaxSpeed    float64 `json:"maxSpeed"`
	SpeedFactor float64 `json:"speedFactor"`
	EnemyCount  int     `json:"enemyCount"`
	Ammo        int     `json:"ammo"`
	CoreHealth  int     `json:"coreHealth"`
}

// Server рассылает снапшоты всем подключённым websocket-клиентам.
// Нужен для настройки и наблюдения за симуляцией со стороны.
type Server struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	upgrader websocket.Upgrader
	srv      *http.Server
}

func NewServer() *Server {
	return &Server{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			// наблюдатель локальный, происхождение не проверяем
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Start поднимает сервер в фоне; пустой addr отключает телеметрию
func (s *Server) Start(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	s.srv = &http.Server{Addr: addr, Handler: mux}
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println("telemetry:", err)
		}
	}()
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("telemetry upgrade:", err)
		return
	}
	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// читаем только чтобы заметить закрытие
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.drop(conn)
				return
			}
		}
	}()
}

// Broadcast шлёт снапшот всем клиентам; мёртвые соединения отцепляются
func (s *Server) Broadcast(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for conn := range s.clients {
		_ = conn.SetWriteDeadline(time.Now().Add(time.Second))
		if err := conn.WriteJSON(snap); err != nil {
			delete(s.clients, conn)
			conn.Close()
		}
	}
}

func (s *Server) drop(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		conn.Close()
	}
}

// Close гасит сервер и все соединения
func (s *Server) Close() {
	if s.srv == nil {
		return
	}
	s.mu.Lock()
	for conn := range s.clients {
		conn.Close()
		delete(s.clients, conn)
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = s.srv.Shutdown(ctx)
}
