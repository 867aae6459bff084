package router

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// PublicModule 挂在 /admin/v1 下且无需登录
type PublicModule interface{ MountPublic(*gin.RouterGroup) }

// AdminModule 挂在 /admin/v1 下且需登录
type AdminModule interface{ MountAdmin(*gin.RouterGroup) }

// 可选：实现该接口可控制挂载顺序（数值越小越先挂）
// 不实现则默认 100
type prioritizer interface{ Priority() int }

// Registry 收集模块，一个模块可同时实现两个接口
type Registry struct {
	mu         sync.RWMutex
	publicMods []PublicModule
	adminMods  []AdminModule
}

func NewRegistry(mods ...any) *Registry {
	r := &Registry{}
	for _, m := range mods {
		r.Register(m)
	}
	return r
}

// Register 根据类型断言分发到 Public/Admin 列表
func (r *Registry) Register(mod any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := mod.(PublicModule); ok {
		r.publicMods = append(r.publicMods, m)
	}
	if m, ok := mod.(AdminModule); ok {
		r.adminMods = append(r.adminMods, m)
	}
}

func (r *Registry) MountAllPublic(g *gin.RouterGroup) {
	r.mu.RLock()
	mods := append([]PublicModule(nil), r.publicMods...)
	r.mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountPublic(g)
	}
}

func (r *Registry) MountAllAdmin(g *gin.RouterGroup) {
	r.mu.RLock()
	mods := append([]AdminModule(nil), r.adminMods...)
	r.mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAdmin(g)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
