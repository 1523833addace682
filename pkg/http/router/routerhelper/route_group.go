package routerhelper

import (
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers httprouter handles under a common path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

// Group returns a nested group below rg.
func (rg *RouteGroup) Group(prefix string) *RouteGroup {
	return NewRouteGroup(rg.router, rg.subPath(prefix))
}

func (rg *RouteGroup) subPath(p string) string {
	joined := path.Join(rg.prefix, p)
	if len(p) > 0 && p[len(p)-1] == '/' && joined[len(joined)-1] != '/' {
		joined += "/"
	}
	return joined
}

func (rg *RouteGroup) Handle(method, p string, handle httprouter.Handle) {
	rg.router.Handle(method, rg.subPath(p), handle)
}

func (rg *RouteGroup) GET(p string, handle httprouter.Handle) {
	rg.Handle(http.MethodGet, p, handle)
}

func (rg *RouteGroup) POST(p string, handle httprouter.Handle) {
	rg.Handle(http.MethodPost, p, handle)
}

func (rg *RouteGroup) DELETE(p string, handle httprouter.Handle) {
	rg.Handle(http.MethodDelete, p, handle)
}
