package router

import (
	"net/http"
	"path"
	"slices"

	"github.com/gin-gonic/gin"
)

// API is a versioned tree of route groups served under /api/<version>.
type API struct {
	Version string
	Groups  []*DomainGroup
}

// BasePath is the prefix every group is mounted under.
func (a API) BasePath() string {
	return "/api/" + a.Version
}

// Install registers every group on the engine.
func (a API) Install(engine *gin.Engine) {
	base := engine.Group(a.BasePath())
	for _, g := range a.Groups {
		g.RegisterRoutes(base)
	}
}

// Routes lists every route with its full path.
func (a API) Routes() []RouteInfo {
	var out []RouteInfo
	for _, g := range a.Groups {
		for _, r := range g.Routes() {
			r.Path = joinPath(a.BasePath(), r.Path)
			out = append(out, r)
		}
	}
	return out
}

// RouteInfo is a declared method and path.
type RouteInfo struct {
	Method string
	Path   string
}

// DomainGroup is one area of the API: a prefix, shared middleware, its own
// routes and nested groups. Nested groups inherit the middleware.
type DomainGroup struct {
	name       string
	prefix     string
	middleware []gin.HandlerFunc
	routes     []route
	children   []*DomainGroup
}

type route struct {
	method string
	path   string
	chain  []gin.HandlerFunc
}

// NewDomainGroup creates an empty group mounted at prefix.
func NewDomainGroup(name, prefix string) *DomainGroup {
	return &DomainGroup{name: name, prefix: prefix}
}

// Name returns the group's label.
func (g *DomainGroup) Name() string   { return g.name }

// Prefix returns the path the group is mounted at.
func (g *DomainGroup) Prefix() string { return g.prefix }

// Use appends middleware. Nil entries are dropped so optional guards can be
// passed as they are.
func (g *DomainGroup) Use(mw ...gin.HandlerFunc) *DomainGroup {
	g.middleware = append(g.middleware, present(mw)...)
	return g
}

// Handle declares a route. Nil handlers are dropped.
func (g *DomainGroup) Handle(method, p string, handlers ...gin.HandlerFunc) *DomainGroup {
	g.routes = append(g.routes, route{method: method, path: p, chain: present(handlers)})
	return g
}

// GET declares a GET route.
func (g *DomainGroup) GET(p string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodGet, p, h...)
}

// POST declares a POST route.
func (g *DomainGroup) POST(p string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodPost, p, h...)
}

// PUT declares a PUT route.
func (g *DomainGroup) PUT(p string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodPut, p, h...)
}

// DELETE declares a DELETE route.
func (g *DomainGroup) DELETE(p string, h ...gin.HandlerFunc) *DomainGroup {
	return g.Handle(http.MethodDelete, p, h...)
}

// Group nests a new group under g.
func (g *DomainGroup) Group(name, prefix string) *DomainGroup {
	child := NewDomainGroup(name, prefix)
	g.children = append(g.children, child)
	return child
}

// RegisterRoutes mounts g and its children on parent.
func (g *DomainGroup) RegisterRoutes(parent *gin.RouterGroup) {
	rg := parent.Group(g.prefix, g.middleware...)
	for _, r := range g.routes {
		rg.Handle(r.method, r.path, r.chain...)
	}
	for _, child := range g.children {
		child.RegisterRoutes(rg)
	}
}

// Routes lists the declared routes relative to the parent g is mounted on,
// own routes first.
func (g *DomainGroup) Routes() []RouteInfo {
	out := make([]RouteInfo, 0, len(g.routes))
	for _, r := range g.routes {
		out = append(out, RouteInfo{Method: r.method, Path: joinPath(g.prefix, r.path)})
	}
	for _, child := range g.children {
		for _, info := range child.Routes() {
			out = append(out, RouteInfo{Method: info.Method, Path: joinPath(g.prefix, info.Path)})
		}
	}
	return out
}

func present(handlers []gin.HandlerFunc) []gin.HandlerFunc {
	return slices.DeleteFunc(slices.Clone(handlers), func(h gin.HandlerFunc) bool { return h == nil })
}

func joinPath(prefix, p string) string {
	if p == "" {
		return prefix
	}
	if joined := path.Join(prefix, p); joined != "." {
		return joined
	}
	return "/"
}
