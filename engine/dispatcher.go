package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
)

// Dispatcher tries its tiers in order and returns the first page that is
// not a bot challenge. The tier that last succeeded for a host is tried
// first on the next request to that host.
type Dispatcher struct {
	engines []Engine
	memory  *HostMemory
	logger  *slog.Logger
}

// NewDispatcher creates a Dispatcher over the given tiers, cheapest or most
// reliable first.
func NewDispatcher(memory *HostMemory, engines ...Engine) *Dispatcher {
	return &Dispatcher{
		engines: engines,
		memory:  memory,
		logger:  slog.Default().WithGroup("dispatcher"),
	}
}

// Engines returns the tier names in their configured order.
func (d *Dispatcher) Engines() []string {
	names := make([]string, len(d.engines))
	for i, e := range d.engines {
		names[i] = e.Name()
	}
	return names
}

// Dispatch fetches req.URL through the tier chain. If every tier fails it
// returns the last tier's error.
func (d *Dispatcher) Dispatch(ctx context.Context, req *FetchRequest) (*FetchResult, error) {
	if len(d.engines) == 0 {
		return nil, fmt.Errorf("dispatcher: no engines configured")
	}
	host := hostOf(req.URL)
	remembered := d.memory.Get(host)

	var lastErr error
	for _, eng := range d.order(remembered) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := d.try(ctx, eng, req)
		if err == nil {
			if eng.Name() != remembered {
				d.memory.Set(host, eng.Name())
			}
			return res, nil
		}
		d.logger.WarnContext(ctx, "engine failed",
			slog.String("engine", eng.Name()),
			slog.String("url", req.URL),
			slog.Any("error", err),
		)
		if eng.Name() == remembered {
			d.memory.Forget(host)
		}
		lastErr = err
	}
	return nil, lastErr
}

func (d *Dispatcher) try(ctx context.Context, eng Engine, req *FetchRequest) (*FetchResult, error) {
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}
	res, err := eng.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	res.EngineName = eng.Name()
	if err := checkChallenge(res); err != nil {
		return nil, err
	}
	return res, nil
}

// order puts the remembered tier first and keeps the rest in place.
func (d *Dispatcher) order(remembered string) []Engine {
	if remembered == "" {
		return d.engines
	}
	out := make([]Engine, 0, len(d.engines))
	for _, e := range d.engines {
		if e.Name() == remembered {
			out = append(out, e)
		}
	}
	for _, e := range d.engines {
		if e.Name() != remembered {
			out = append(out, e)
		}
	}
	return out
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Hostname()
}
