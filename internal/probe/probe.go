// Package probe is a small client for the query websocket.
package probe

import (
	"context"
	"fmt"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/frudas24/dropzone/internal/query"
)

// Client sends queries over one websocket connection, one at a time.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
	seq  int
}

// Dial connects to a query endpoint such as ws://localhost:8790/ws/query.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Query sends msg and waits for its reply. The sequence number is assigned here.
func (c *Client) Query(ctx context.Context, msg query.Message) (query.Reply, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	msg.Seq = c.seq
	if err := wsjson.Write(ctx, c.conn, msg); err != nil {
		return query.Reply{}, err
	}
	var reply query.Reply
	if err := wsjson.Read(ctx, c.conn, &reply); err != nil {
		return query.Reply{}, err
	}
	if reply.Seq != msg.Seq {
		return reply, fmt.Errorf("reply seq %d does not match request %d", reply.Seq, msg.Seq)
	}
	return reply, nil
}

// Close closes the connection normally.
func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}
