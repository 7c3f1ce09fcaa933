package transport

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/gorilla/websocket"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	sendBufferSize = 32
	pingInterval   = 30 * time.Second
	writeWait      = 10 * time.Second
)

var ErrHubClosed = errors.New("hub is closed")

// Hub fans messages out to every connected peer and reports what they send.
type Hub struct {
	mu           sync.Mutex
	peers        map[message.PeerID]*Peer
	closed       bool
	onMessage    func(*Peer, message.Message)
	onConnect    func(*Peer)
	onDisconnect func(*Peer)
	upgrader     websocket.Upgrader
	newID        func() message.PeerID
}

type Peer struct {
	ID   message.PeerID
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewHub() *Hub {
	return &Hub{
		peers:        make(map[message.PeerID]*Peer),
		onMessage:    func(*Peer, message.Message) {},
		onConnect:    func(*Peer) {},
		onDisconnect: func(*Peer) {},
		upgrader:     websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		newID:        message.NewPeerID,
	}
}

func (h *Hub) OnMessage(f func(*Peer, message.Message)) { h.onMessage = f }

func (h *Hub) OnConnect(f func(*Peer)) { h.onConnect = f }

func (h *Hub) OnDisconnect(f func(*Peer)) { h.onDisconnect = f }

// Serve upgrades the request and reads from the peer until it leaves.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	p := &Peer{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
	}
	if err = h.register(p); err != nil {
		_ = conn.Close()
		return err
	}

	go p.writeLoop()
	h.onConnect(p)
	p.readLoop()
	return nil
}

// register gives p an id no other peer holds.
func (h *Hub) register(p *Peer) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHubClosed
	}
	for {
		p.ID = h.newID()
		if _, c := h.peers[p.ID]; !c {
			break
		}
	}
	h.peers[p.ID] = p
	return nil
}

func (h *Hub) unregister(p *Peer) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, c := h.peers[p.ID]; !c {
		return false
	}
	delete(h.peers, p.ID)
	close(p.send)
	return true
}

// Broadcast queues data for every peer. Peers whose buffer is full miss it.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, p := range h.peers {
		p.enqueue(data)
	}
}

// SendTo queues data for one peer.
func (h *Hub) SendTo(id message.PeerID, data []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, c := h.peers[id]
	if !c {
		return false
	}
	return p.enqueue(data)
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.peers)
}

// Close disconnects every peer and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	peers := make([]*Peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	h.mu.Unlock()

	for _, p := range peers {
		_ = p.conn.Close()
	}
}

// Send queues data for this peer only.
func (p *Peer) Send(data []byte) bool {
	return p.hub.SendTo(p.ID, data)
}

func (p *Peer) enqueue(data []byte) bool {
	select {
	case p.send <- data:
		return true
	default:
		logx.Slowf("peer %s send buffer full, dropping message", p.ID)
		return false
	}
}

func (p *Peer) readLoop() {
	defer func() {
		if p.hub.unregister(p) {
			p.hub.onDisconnect(p)
		}
		_ = p.conn.Close()
	}()

	for {
		_, data, err := p.conn.ReadMessage()
		if err != nil {
			return
		}

		m, err := message.Decode(data)
		if err != nil {
			logx.Infof("peer %s sent a bad message: %v", p.ID, err)
			continue
		}
		p.hub.onMessage(p, m)
	}
}

func (p *Peer) writeLoop() {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-p.send:
			if !ok {
				_ = p.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
				return
			}
			_ = p.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := p.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			if err := p.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
