package router

import (
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// searchStream upgrades to a websocket. The client sends plan requests as JSON text frames and
// receives the search events of each request followed by its result.
func (api *API) searchStream(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		return
	}
	// deadlines of the http server do not apply to a long lived stream
	_ = conn.SetDeadline(time.Time{})

	api.log.Info("established websocket connection", zap.String("connection name", nameConn(conn)),
		zap.String("protocol", hs.Protocol))

	session := api.hub.Register(conn)
	defer func() {
		api.hub.Remove(session)
		session.Close()
	}()

	if err := session.Serve(r.Context()); err != nil && !isClosedConn(err) {
		api.log.Error("search stream error", zap.Error(err), zap.String("connection name", nameConn(conn)))
	}
}

func isClosedConn(err error) bool {
	var closed wsutil.ClosedError
	return errors.As(err, &closed) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
