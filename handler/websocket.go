package handler

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	ledgerConnections = make(map[*websocket.Conn]bool)
	ledgerMutex       sync.Mutex
)

// LedgerWebsocket đẩy snapshot hai sổ booking cho dashboard Admin mỗi khi
// sổ thay đổi
func (a *App) LedgerWebsocket(c *websocket.Conn) {
	ledgerMutex.Lock()
	ledgerConnections[c] = true
	ledgerMutex.Unlock()
	log.Printf("WS mới cho sổ booking. Tổng kết nối: %d", len(ledgerConnections))

	defer func() {
		ledgerMutex.Lock()
		delete(ledgerConnections, c)
		ledgerMutex.Unlock()
		c.Close()
	}()

	// Gửi ngay trạng thái hiện tại cho client mới connect
	c.WriteJSON(a.ledgerSnapshot())

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}

// BroadcastLedger gửi snapshot sổ cho mọi client đang kết nối
func (a *App) BroadcastLedger() {
	snapshot := a.ledgerSnapshot()

	ledgerMutex.Lock()
	defer ledgerMutex.Unlock()
	for conn := range ledgerConnections {
		if err := conn.WriteJSON(snapshot); err != nil {
			conn.Close()
			delete(ledgerConnections, conn)
		}
	}
}

func (a *App) ledgerSnapshot() map[string]any {
	return map[string]any{
		"pending": a.Store.Pending(),
		"paid":    a.Store.Paid(),
	}
}
