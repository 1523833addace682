package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/primplanner/pkg/engine/search"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const streamBufferSize = 1024

// Session is one websocket client of the search stream.
type Session struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (s *Session) readRequest() (*planRequest, error) {
	for {
		h, r, err := wsutil.NextReader(s.conn, ws.StateServerSide)
		if err != nil {
			return nil, err
		}
		if h.OpCode.IsControl() {
			if err := wsutil.ControlFrameHandler(s.conn, ws.StateServerSide)(h, r); err != nil {
				return nil, err
			}
			continue
		}

		req := &planRequest{}
		if err := json.NewDecoder(r).Decode(req); err != nil {
			return nil, err
		}
		return req, nil
	}
}

func (s *Session) write(x interface{}) error {
	w := wsutil.NewWriter(s.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	s.io.Lock()
	defer s.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}
	return w.Flush()
}

func (s *Session) writeError(code, message string) error {
	return s.write(envelope{"error": map[string]string{
		"code":    code,
		"message": message,
	}})
}

// Serve answers plan requests until the client disconnects. For every request the search
// events are streamed first, then the final result.
func (s *Session) Serve(ctx context.Context) error {
	for {
		request, err := s.readRequest()
		if err != nil {
			return err
		}
		if err := s.hub.api.validate.Struct(request); err != nil {
			if err := s.writeError("Bad Request", s.hub.api.validationError(err).Error()); err != nil {
				return err
			}
			continue
		}
		req, err := request.toEngineRequest()
		if err != nil {
			if err := s.writeError("Bad Request", err.Error()); err != nil {
				return err
			}
			continue
		}

		events := make(chan search.Event, streamBufferSize)
		observer := search.NewChannelObserver(events)

		var res *search.Result
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			defer close(events)
			var err error
			res, err = s.hub.api.plannerService.Stream(gctx, req, observer)
			return err
		})
		g.Go(func() error {
			for ev := range events {
				if err := s.write(streamEvent{Type: string(ev.Type), Data: ev}); err != nil {
					return err
				}
			}
			return nil
		})
		if err := g.Wait(); err != nil {
			if werr := s.writeError("Internal Server Error", err.Error()); werr != nil {
				return werr
			}
			continue
		}
		if observer.Dropped() > 0 {
			s.hub.api.log.Debug("search events dropped", zap.Int("dropped", observer.Dropped()))
		}
		if err := s.write(streamEvent{Type: "result", Data: NewPlanResponse(res, false)}); err != nil {
			return err
		}
	}
}

func (s *Session) Close() error {
	return s.conn.Close()
}

// Hub tracks open stream sessions so they can be closed on shutdown.
type Hub struct {
	mu  sync.RWMutex
	seq uint
	ss  []*Session
	ns  map[uint]*Session

	api *plannerAPI
}

func NewHub(plannerService PlannerService, log *zap.Logger) *Hub {
	return &Hub{
		ns:  make(map[uint]*Session),
		ss:  make([]*Session, 0),
		api: New(plannerService, log),
	}
}

func (h *Hub) Register(conn net.Conn) *Session {
	session := &Session{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	session.id = h.seq
	h.ns[session.id] = session
	h.ss = append(h.ss, session)
	h.seq++
	h.mu.Unlock()

	return session
}

func (h *Hub) Remove(session *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ns[session.id]; !ok {
		return
	}
	delete(h.ns, session.id)

	i := sort.Search(len(h.ss), func(i int) bool {
		return h.ss[i].id >= session.id
	})
	h.ss = append(h.ss[:i:i], h.ss[i+1:]...)
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.ss)
}

// CloseAll closes every open session.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	sessions := h.ss
	h.ss = make([]*Session, 0)
	h.ns = make(map[uint]*Session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
