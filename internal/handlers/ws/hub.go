package ws

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/rafabene/plazamap-backend/internal/domain/ports"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Event é o envelope publicado para os clientes conectados
type Event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Hub mantém os clientes WebSocket conectados e distribui os eventos
// de pontos (criado, atualizado, excluído) para todos eles
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	logger     ports.Logger
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		logger:     logger,
	}
}

// Run processa registros e broadcasts; deve rodar em sua própria goroutine
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
		case message := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- message:
				default:
					// Cliente lento; derruba a conexão
					delete(h.clients, c)
					close(c.send)
				}
			}
		}
	}
}

// BroadcastPointCreated publica o evento de ponto criado
func (h *Hub) BroadcastPointCreated(payload interface{}) {
	h.publish("point.created", payload)
}

// BroadcastPointUpdated publica o evento de ponto atualizado
func (h *Hub) BroadcastPointUpdated(payload interface{}) {
	h.publish("point.updated", payload)
}

// BroadcastPointDeleted publica o evento de ponto excluído
func (h *Hub) BroadcastPointDeleted(pointID string) {
	h.publish("point.deleted", map[string]string{"id": pointID})
}

func (h *Hub) publish(event string, payload interface{}) {
	data, err := json.Marshal(Event{Event: event, Payload: payload})
	if err != nil {
		h.logger.Error("Failed to marshal websocket event", "event", event, "error", err)
		return
	}

	select {
	case h.broadcast <- data:
	default:
		h.logger.Warn("Websocket broadcast buffer full, dropping event", "event", event)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// A autenticação acontece no middleware; a origem fica a cargo do CORS
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS faz o upgrade da conexão e registra o cliente no hub
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", "error", err)
		return
	}

	cl := &client{hub: h, conn: conn, send: make(chan []byte, 16)}
	h.register <- cl

	go cl.writePump()
	go cl.readPump()
}

// readPump descarta mensagens do cliente e detecta desconexões
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
