package scraper

import (
	"math"
	"sync"
	"time"

	"github.com/go-rod/rod/lib/proto"
)

// Retirement thresholds for pooled tabs.
const (
	maxErrScore = 3.0
	maxUses     = 50
	maxPageAge  = 50 * time.Minute
)

type tabHealth struct {
	errScore float64
	uses     int
	created  time.Time
}

// pageHealth scores pooled tabs so that a tab which keeps failing, or has
// served many pages, is closed and replaced instead of reused.
type pageHealth struct {
	mu   sync.Mutex
	tabs map[proto.TargetTargetID]*tabHealth
	now  func() time.Time
}

func newPageHealth() *pageHealth {
	return &pageHealth{
		tabs: make(map[proto.TargetTargetID]*tabHealth),
		now:  time.Now,
	}
}

// record applies one render outcome and reports whether the tab should be
// retired. A retired tab is forgotten.
func (h *pageHealth) record(id proto.TargetTargetID, ok bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, found := h.tabs[id]
	if !found {
		t = &tabHealth{created: h.now()}
		h.tabs[id] = t
	}
	t.uses++
	if ok {
		t.errScore = math.Max(0, t.errScore-0.5)
	} else {
		t.errScore++
	}

	retire := t.errScore >= maxErrScore || t.uses >= maxUses || h.now().Sub(t.created) >= maxPageAge
	if retire {
		delete(h.tabs, id)
	}
	return retire
}
