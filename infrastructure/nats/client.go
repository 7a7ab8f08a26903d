package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"taskboard/pkg/config"
	"taskboard/pkg/logger"
)

// Subjects สำหรับ task lifecycle events
const (
	SubjectTaskCreated       = "tasks.created"
	SubjectTaskStatusChanged = "tasks.status_changed"
	SubjectTaskDeleted       = "tasks.deleted"
)

// Client wraps NATS connection
type Client struct {
	conn *nats.Conn
}

// NewClient สร้าง NATS client พร้อม reconnect handler
func NewClient(cfg config.NATSConfig) (*Client, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.MaxReconnects(-1), // Reconnect forever
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS client initialized", "url", cfg.URL)
	return &Client{conn: nc}, nil
}

// Publish ส่ง payload ไปยัง subject
func (c *Client) Publish(subject string, data []byte) error {
	return c.conn.Publish(subject, data)
}

// Close drains และปิด connection
func (c *Client) Close() {
	if c.conn != nil {
		_ = c.conn.Drain()
	}
}
